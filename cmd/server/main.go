package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"wakachi/internal/cache"
	"wakachi/internal/server"
	"wakachi/internal/tokenizer"
	"wakachi/pkg/options"
)

func main() {
	dictionaryPath := getenv("DICTIONARY_PATH", "system.dic")
	tok, err := tokenizer.Open(dictionaryPath, options.WithMode(getenv("DEFAULT_MODE", "C")))
	if err != nil {
		log.Fatalf("init error: %v", err)
	}
	defer tok.Close()

	// Caching is off unless REDIS_ADDR is set.
	var rc *cache.ResultCache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		})
		defer client.Close()
		ttl := time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second
		rc = cache.New(client, ttl)
		log.Printf("caching results in redis at %s (ttl %s)", redisAddr, ttl)
	}

	srv, err := server.New(tok, rc)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	addr := getenv("HTTP_ADDR", ":8080")
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, srv.Handler()))
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
