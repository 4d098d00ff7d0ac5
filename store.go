package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// timestamps are stored as UTC text so sqlite's date functions compare them
// directly against datetime('now').
const timeLayout = "2006-01-02 15:04:05"

// retention is how long visitor rows are kept.
const retention = "-12 months"

// Privacy-conscious visitor record
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // never the raw address
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TopPaths         []PathStat      `json:"top_paths"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// VisitorStore keeps page visits in sqlite with salted, truncated IP hashes.
type VisitorStore struct {
	db     *sql.DB
	salt   string
	logger *log.Logger

	// pending counts RecordAsync inserts not yet finished.
	pending sync.WaitGroup
}

func openVisitorStore(ctx context.Context, path string, logger *log.Logger) (*VisitorStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite allows one writer; a single connection also keeps :memory: databases shared.
	db.SetMaxOpenConns(1)

	salt, err := randomToken()
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &VisitorStore{db: db, salt: salt, logger: logger}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("Privacy-conscious visitor tracking initialized", "db", path)
	return s, nil
}

func (s *VisitorStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create visitors table: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp)`)
	if err != nil {
		return fmt.Errorf("create visitors index: %w", err)
	}
	return nil
}

// Close waits for in-flight RecordAsync inserts before closing the database.
// Callers must stop issuing RecordAsync first.
func (s *VisitorStore) Close() error {
	s.pending.Wait()
	return s.db.Close()
}

// hashIP is stable for one process: the salt is regenerated on restart.
func (s *VisitorStore) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (s *VisitorStore) Record(ctx context.Context, ip, userAgent, path string) error {
	return s.recordAt(ctx, ip, userAgent, path, time.Now())
}

// RecordAsync records a visit in the background. Errors are logged.
func (s *VisitorStore) RecordAsync(ctx context.Context, ip, userAgent, path string) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.Record(ctx, ip, userAgent, path); err != nil {
			s.logger.Error("Error recording visitor", "err", err)
		}
	}()
}

func (s *VisitorStore) recordAt(ctx context.Context, ip, userAgent, path string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, s.hashIP(ip), userAgent, path, at.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("record visitor: %w", err)
	}
	return nil
}

// Cleanup removes visitor rows past the retention window.
func (s *VisitorStore) Cleanup(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM visitors
		WHERE timestamp < datetime('now', ?)
	`, retention)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		s.logger.Info("Privacy cleanup: removed old visitor records", "rows", n)
	}
	return n, nil
}

func (s *VisitorStore) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}

	counts := []struct {
		query string
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')`, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')`, &stats.VisitorsThisWeek},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	stats.TopPaths, err = s.topPaths(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors, err = s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// topPaths must release its rows before returning: the pool holds one connection.
func (s *VisitorStore) topPaths(ctx context.Context, limit int) ([]PathStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(path, ''), COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	var paths []PathStat
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, fmt.Errorf("top paths: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Recent returns the newest visits first.
func (s *VisitorStore) Recent(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("recent visitors: %w", err)
		}
		v.Timestamp, err = time.Parse(timeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("recent visitors: bad timestamp %q: %w", ts, err)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
