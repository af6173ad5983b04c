package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"wakachi/internal/tokenizer"
)

// ResultCache wraps a Redis client to store tokenization results.
// A nil *ResultCache is valid and never hits.
type ResultCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a new ResultCache with the provided Redis client. Entries
// expire after ttl; zero keeps them until evicted.
func New(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, prefix: "tokenize", ttl: ttl}
}

// Key returns the Redis key for text tokenized in mode. The dictionary
// description is part of the key so a new dictionary does not reuse old
// results.
func (c *ResultCache) Key(dictionary string, mode tokenizer.Mode, text string) string {
	h := xxhash.New()
	h.WriteString(dictionary)
	h.WriteString("\x00")
	h.WriteString(text)
	return c.prefix + ":" + mode.String() + ":" + strconv.FormatUint(h.Sum64(), 16)
}

// Get returns the cached morphemes, or ok == false on a miss.
func (c *ResultCache) Get(ctx context.Context, dictionary string, mode tokenizer.Mode, text string) (ms []tokenizer.Morpheme, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}
	data, err := c.client.Get(ctx, c.Key(dictionary, mode, text)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if err := json.Unmarshal(data, &ms); err != nil {
		return nil, false, err
	}
	return ms, true, nil
}

// Set stores morphemes for text tokenized in mode.
func (c *ResultCache) Set(ctx context.Context, dictionary string, mode tokenizer.Mode, text string, ms []tokenizer.Morpheme) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(ms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.Key(dictionary, mode, text), data, c.ttl).Err()
}

// Purge deletes every cached result.
func (c *ResultCache) Purge(ctx context.Context) error {
	if c == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, c.prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
