// database/db.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "doga_platform")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Bağlantıyı test et
	err = db.Ping()
	if err != nil {
		return nil, err
	}

	// Bağlantı havuzu ayarları
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	log.Println("Veritabanına başarıyla bağlandı")
	return db, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func InitDB(db *sql.DB) error {
	// Kullanıcılar tablosu
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			fullname VARCHAR(100),
			avatar TEXT,
			bio TEXT,
			district VARCHAR(100),
			website VARCHAR(255),
			role VARCHAR(20) DEFAULT 'uye',
			email_verified BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			last_login TIMESTAMP,
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Yürüyüş rotaları tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS walks (
			id SERIAL PRIMARY KEY,
			name VARCHAR(150) UNIQUE NOT NULL,
			description TEXT,
			difficulty VARCHAR(20) CHECK (difficulty IN ('kolay', 'orta', 'zor')),
			distance_km DECIMAL(6,2) NOT NULL,
			duration_min INTEGER DEFAULT 0,
			start_point VARCHAR(255),
			center_lat DOUBLE PRECISION,
			center_lng DOUBLE PRECISION,
			zoom INTEGER DEFAULT 14,
			polyline JSONB,
			image_url TEXT,
			season VARCHAR(20) DEFAULT 'tum_yil',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP,
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Rota noktaları tablosu (çeşme, manzara, dinlenme alanı vb.)
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS walk_points (
			id SERIAL PRIMARY KEY,
			walk_id INTEGER REFERENCES walks(id) ON DELETE CASCADE,
			point_order INTEGER NOT NULL,
			label VARCHAR(150) NOT NULL,
			description TEXT,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL,
			kind VARCHAR(30) DEFAULT 'nokta',
			UNIQUE(walk_id, point_order)
		)
	`)
	if err != nil {
		return err
	}

	// Mahalle bostanları tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS gardens (
			id SERIAL PRIMARY KEY,
			name VARCHAR(150) UNIQUE NOT NULL,
			description TEXT,
			address VARCHAR(255),
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			area_m2 INTEGER DEFAULT 0,
			plot_count INTEGER DEFAULT 0,
			plots_free INTEGER DEFAULT 0,
			image_url TEXT,
			contact_email VARCHAR(100),
			created_at TIMESTAMP DEFAULT NOW(),
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Etkinlikler tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			title VARCHAR(200) NOT NULL,
			description TEXT,
			category VARCHAR(30) DEFAULT 'yuruyus',
			location VARCHAR(255),
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			starts_at TIMESTAMP NOT NULL,
			ends_at TIMESTAMP,
			capacity INTEGER DEFAULT 0,
			image_url TEXT,
			organizer_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMP DEFAULT NOW(),
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Etkinlik kayıtları tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS event_registrations (
			id SERIAL PRIMARY KEY,
			event_id INTEGER REFERENCES events(id) ON DELETE CASCADE,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			registered_at TIMESTAMP DEFAULT NOW(),
			UNIQUE(event_id, user_id)
		)
	`)
	if err != nil {
		return err
	}

	// Dernekler tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS associations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(150) UNIQUE NOT NULL,
			description TEXT,
			theme VARCHAR(30) DEFAULT 'koruma',
			address VARCHAR(255),
			contact_email VARCHAR(100),
			website VARCHAR(255),
			member_count INTEGER DEFAULT 0,
			image_url TEXT,
			created_at TIMESTAMP DEFAULT NOW(),
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Pazarlar tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS markets (
			id SERIAL PRIMARY KEY,
			name VARCHAR(150) UNIQUE NOT NULL,
			description TEXT,
			address VARCHAR(255),
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			day_of_week VARCHAR(15) NOT NULL,
			open_time VARCHAR(5) DEFAULT '08:00',
			close_time VARCHAR(5) DEFAULT '18:00',
			stall_count INTEGER DEFAULT 0,
			is_organic BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Test soruları tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS quiz_questions (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			options JSONB NOT NULL,
			correct_option INTEGER NOT NULL,
			explanation TEXT,
			category VARCHAR(30) DEFAULT 'genel',
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Yorumlar tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS comments (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			content_kind VARCHAR(20) NOT NULL,
			content_id INTEGER NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	// Puanlamalar tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS ratings (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			content_kind VARCHAR(20) NOT NULL,
			content_id INTEGER NOT NULL,
			stars INTEGER CHECK (stars BETWEEN 1 AND 5),
			created_at TIMESTAMP DEFAULT NOW(),
			UNIQUE(user_id, content_kind, content_id)
		)
	`)
	if err != nil {
		return err
	}

	// Arkadaşlıklar tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS friendships (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			friend_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			status VARCHAR(15) DEFAULT 'bekliyor',
			created_at TIMESTAMP DEFAULT NOW(),
			UNIQUE(user_id, friend_id)
		)
	`)
	if err != nil {
		return err
	}

	// Gruplar tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS groups (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL,
			description TEXT,
			theme VARCHAR(30) DEFAULT 'genel',
			owner_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	// Grup üyelikleri tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS group_members (
			id SERIAL PRIMARY KEY,
			group_id INTEGER REFERENCES groups(id) ON DELETE CASCADE,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			joined_at TIMESTAMP DEFAULT NOW(),
			UNIQUE(group_id, user_id)
		)
	`)
	if err != nil {
		return err
	}

	// Grup mesajları tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS messages (
			id SERIAL PRIMARY KEY,
			group_id INTEGER REFERENCES groups(id) ON DELETE CASCADE,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			body TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	// Kullanıcı oturumları tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_sessions (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			session_token VARCHAR(255) UNIQUE NOT NULL,
			device VARCHAR(255),
			ip_address VARCHAR(45),
			user_agent TEXT,
			created_at TIMESTAMP DEFAULT NOW(),
			last_activity TIMESTAMP DEFAULT NOW(),
			expires_at TIMESTAMP NOT NULL,
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Kullanıcı ayarları tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_settings (
			user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			email_notifications BOOLEAN DEFAULT TRUE,
			browser_notifications BOOLEAN DEFAULT TRUE,
			profile_public BOOLEAN DEFAULT TRUE,
			show_activity BOOLEAN DEFAULT TRUE,
			show_online_status BOOLEAN DEFAULT TRUE,
			theme VARCHAR(20) DEFAULT 'acik',
			language VARCHAR(10) DEFAULT 'tr',
			updated_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	// Aktivite logları tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS activity_logs (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			action_type VARCHAR(50) NOT NULL,
			content_kind VARCHAR(20),
			content_id INTEGER,
			ip_address VARCHAR(45),
			created_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	// Admin tablosu
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			avatar TEXT,
			role VARCHAR(20) DEFAULT 'admin',
			last_login TIMESTAMP,
			created_at TIMESTAMP DEFAULT NOW(),
			is_active BOOLEAN DEFAULT TRUE
		)
	`)
	if err != nil {
		return err
	}

	// Admin logları
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS admin_logs (
			id SERIAL PRIMARY KEY,
			admin_id INTEGER REFERENCES admins(id),
			action_type VARCHAR(50) NOT NULL,
			target_kind VARCHAR(20),
			target_id INTEGER,
			details TEXT,
			ip_address VARCHAR(45),
			created_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	// Sistem ayarları
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS system_settings (
			key VARCHAR(100) PRIMARY KEY,
			value TEXT,
			updated_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	// İndeksler
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_walk_points_walk_id ON walk_points(walk_id);
		CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events(starts_at);
		CREATE INDEX IF NOT EXISTS idx_comments_content ON comments(content_kind, content_id);
		CREATE INDEX IF NOT EXISTS idx_ratings_content ON ratings(content_kind, content_id);
		CREATE INDEX IF NOT EXISTS idx_friendships_user_id ON friendships(user_id);
		CREATE INDEX IF NOT EXISTS idx_friendships_friend_id ON friendships(friend_id);
		CREATE INDEX IF NOT EXISTS idx_messages_group_id ON messages(group_id);
		CREATE INDEX IF NOT EXISTS idx_user_sessions_token ON user_sessions(session_token);
		CREATE INDEX IF NOT EXISTS idx_activity_logs_user_id ON activity_logs(user_id);
		CREATE INDEX IF NOT EXISTS idx_walks_difficulty ON walks(difficulty);
	`)

	return err
}
