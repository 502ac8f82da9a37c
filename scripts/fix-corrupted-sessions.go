package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

const (
	sessionKeyPrefix = "session:"
	sessionIndexKey  = "session:index"
	historyKeyPrefix = "session:history:"
)

// problem returns why a stored session cannot be served, or ""
func problem(key, data string) string {
	var session entities.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return "corrupted JSON"
	}
	if sessionKeyPrefix+session.ID != key {
		return fmt.Sprintf("id %q does not match key", session.ID)
	}

	seen := make(map[string]bool, len(session.EntityTurn))
	for _, entry := range session.EntityTurn {
		if entry == nil {
			return "nil turn entry"
		}
		if seen[entry.EntityUID] {
			return fmt.Sprintf("%s is queued twice", entry.EntityUID)
		}
		seen[entry.EntityUID] = true
		if _, ok := session.Combatant(entry.EntityUID); !ok {
			return fmt.Sprintf("queued %s is not in the roster", entry.EntityUID)
		}
	}
	return ""
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted session data...")

	iter := client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if key == sessionIndexKey || strings.HasPrefix(key, historyKeyPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := problem(key, data); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// index entries whose record expired or was removed by hand
	ids, err := client.SMembers(ctx, sessionIndexKey).Result()
	if err != nil {
		log.Fatal("Error reading session index:", err)
	}
	var staleIDs []string
	for _, id := range ids {
		exists, err := client.Exists(ctx, sessionKeyPrefix+id).Result()
		if err != nil {
			fmt.Printf("Error checking %s: %v\n", id, err)
			continue
		}
		if exists == 0 {
			fmt.Printf("✗ index entry %s has no session\n", id)
			staleIDs = append(staleIDs, id)
		}
	}

	fmt.Printf("\nChecked %d sessions, found %d corrupted entries and %d stale index entries\n",
		checkedCount, len(corruptedKeys), len(staleIDs))

	if len(corruptedKeys) == 0 && len(staleIDs) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these entries and their history? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		id := strings.TrimPrefix(key, sessionKeyPrefix)
		staleIDs = append(staleIDs, id)
		if err := client.Del(ctx, key, historyKeyPrefix+id).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for _, id := range staleIDs {
		if err := client.SRem(ctx, sessionIndexKey, id).Err(); err != nil {
			fmt.Printf("Failed to unindex %s: %v\n", id, err)
		}
	}
	fmt.Println("\nCleanup complete!")
}
