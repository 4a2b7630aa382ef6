package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ozancz/sozluk/config"
	"github.com/ozancz/sozluk/pkg/helpers"
	"github.com/ozancz/sozluk/pkg/slug"
)

// Seeds a couple of demo users, a topic with entries and a comment, enough
// to click through every view locally.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "sifre123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ozan := seedUser(db, "ozan", "ozan@example.com", hash, "Ozan", true)
	elif := seedUser(db, "elif", "elif@example.com", hash, "Elif", false)
	fmt.Printf("seeded users ozan=%s elif=%s (password %q)\n", ozan, elif, password)

	title := "türk kahvesi"
	topicID := seedTopic(db, title, "geleneksel kahve üzerine", ozan)

	first := seedEntry(db, topicID, ozan, "kırk yıl hatırı olan içecek. köpüğü tutmayan cezveyle yapılan kahve sayılmaz.")
	second := seedEntry(db, topicID, elif, "yanında su verilmeden servis edilmesi büyük ayıptır. lokum da olursa tadından yenmez.")

	// elif likes the first entry
	if _, err := db.Exec(`UPDATE entries SET likes = array_append(likes, $2) WHERE id = $1 AND NOT ($2 = ANY(likes))`, first, elif); err != nil {
		log.Fatalf("failed to seed like: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO comments (content, author_id, entry_id)
		VALUES ($1, $2, $3)
	`, "katılıyorum, su olmadan olmaz", ozan, second); err != nil {
		log.Fatalf("failed to seed comment: %v", err)
	}

	fmt.Printf("seeded topic %q (%s) with entries %s, %s\n", title, topicID, first, second)
}

func seedUser(db *sql.DB, username, email, hash, displayName string, admin bool) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO users (username, email, password_hash, display_name, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE SET display_name = EXCLUDED.display_name
		RETURNING id
	`, username, email, hash, displayName, admin).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", username, err)
	}
	return id
}

func seedTopic(db *sql.DB, title, description, authorID string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO topics (title, slug, description, author_id, entry_count, tags)
		VALUES ($1, $2, $3, $4, 0, $5)
		ON CONFLICT (slug) DO UPDATE SET description = EXCLUDED.description
		RETURNING id
	`, title, slug.Make(title), description, authorID, "{kahve,kultur}").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed topic: %v", err)
	}
	return id
}

func seedEntry(db *sql.DB, topicID, authorID, content string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO entries (content, author_id, topic_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, content, authorID, topicID).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed entry: %v", err)
	}
	if _, err := db.Exec(`UPDATE topics SET entry_count = entry_count + 1 WHERE id = $1`, topicID); err != nil {
		log.Fatalf("failed to bump entry count: %v", err)
	}
	return id
}
