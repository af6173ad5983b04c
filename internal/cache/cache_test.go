package cache

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"wakachi/internal/tokenizer"
)

func TestKey(t *testing.T) {
	// Creating a client does not dial.
	c := New(redis.NewClient(&redis.Options{Addr: "localhost:0"}), time.Minute)

	k := c.Key("dict", tokenizer.ModeB, "選挙管理委員会")
	if !strings.HasPrefix(k, "tokenize:B:") {
		t.Errorf("Key = %q, want tokenize:B: prefix", k)
	}
	if k != c.Key("dict", tokenizer.ModeB, "選挙管理委員会") {
		t.Error("Key is not deterministic")
	}
	others := []string{
		c.Key("dict", tokenizer.ModeA, "選挙管理委員会"),
		c.Key("dict", tokenizer.ModeB, "選挙管理委員"),
		c.Key("other", tokenizer.ModeB, "選挙管理委員会"),
	}
	for _, o := range others {
		if o == k {
			t.Errorf("Key collision: %q", o)
		}
	}
}

func TestNilCache(t *testing.T) {
	var c *ResultCache
	ctx := context.Background()
	if _, ok, err := c.Get(ctx, "d", tokenizer.ModeC, "x"); ok || err != nil {
		t.Errorf("Get on nil cache = %v, %v, want miss", ok, err)
	}
	if err := c.Set(ctx, "d", tokenizer.ModeC, "x", nil); err != nil {
		t.Errorf("Set on nil cache: %v", err)
	}
	if err := c.Purge(ctx); err != nil {
		t.Errorf("Purge on nil cache: %v", err)
	}
}

func newTestCache(t *testing.T, ttl time.Duration) (*ResultCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, ttl), mr
}

func TestGetSet(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	if ms, ok, err := c.Get(ctx, "dict", tokenizer.ModeA, "委員会"); ok || err != nil {
		t.Fatalf("Get before Set = %v, %v, %v, want miss", ms, ok, err)
	}

	want := []tokenizer.Morpheme{
		{Begin: 0, End: 6, Surface: "委員", WordID: 2, PartOfSpeech: []string{"名詞", "普通名詞", "一般", "*", "*", "*"},
			NormalizedForm: "委員", DictionaryForm: "委員", ReadingForm: "イイン"},
		{Begin: 6, End: 9, Surface: "会", WordID: 3, PartOfSpeech: []string{"名詞", "普通名詞", "一般", "*", "*", "*"},
			NormalizedForm: "会", DictionaryForm: "会", ReadingForm: "カイ"},
	}
	if err := c.Set(ctx, "dict", tokenizer.ModeA, "委員会", want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := c.Get(ctx, "dict", tokenizer.ModeA, "委員会")
	if err != nil || !ok {
		t.Fatalf("Get after Set = %v, %v, want hit", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get = %+v, want %+v", got, want)
	}

	// Another mode or dictionary is a different entry.
	if _, ok, _ := c.Get(ctx, "dict", tokenizer.ModeC, "委員会"); ok {
		t.Error("Get in mode C hit the mode A entry")
	}
	if _, ok, _ := c.Get(ctx, "other", tokenizer.ModeA, "委員会"); ok {
		t.Error("Get with another dictionary hit")
	}

	key := c.Key("dict", tokenizer.ModeA, "委員会")
	if ttl := mr.TTL(key); ttl != time.Minute {
		t.Errorf("TTL(%s) = %v, want 1m", key, ttl)
	}
	mr.FastForward(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "dict", tokenizer.ModeA, "委員会"); ok {
		t.Error("Get after expiry hit")
	}
}

func TestGetErrors(t *testing.T) {
	c, mr := newTestCache(t, 0)
	ctx := context.Background()

	if err := mr.Set(c.Key("dict", tokenizer.ModeC, "x"), "not json"); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(ctx, "dict", tokenizer.ModeC, "x"); ok || err == nil {
		t.Errorf("Get(corrupt entry) = %v, %v, want error", ok, err)
	}

	mr.Close()
	if _, ok, err := c.Get(ctx, "dict", tokenizer.ModeC, "x"); ok || err == nil {
		t.Errorf("Get(server down) = %v, %v, want error", ok, err)
	}
	if err := c.Set(ctx, "dict", tokenizer.ModeC, "x", nil); err == nil {
		t.Error("Set(server down) succeeded")
	}
}

func TestPurge(t *testing.T) {
	c, mr := newTestCache(t, 0)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, "dict", tokenizer.ModeB, text, []tokenizer.Morpheme{{Surface: text}}); err != nil {
			t.Fatalf("Set(%q): %v", text, err)
		}
	}
	if err := mr.Set("unrelated", "1"); err != nil {
		t.Fatal(err)
	}
	if err := c.Purge(ctx); err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if keys := mr.Keys(); !reflect.DeepEqual(keys, []string{"unrelated"}) {
		t.Errorf("keys after Purge = %v, want [unrelated]", keys)
	}
}
