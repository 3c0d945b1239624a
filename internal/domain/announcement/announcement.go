package announcement

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
)

var ErrForbidden = errors.New("forbidden")

type Announcement struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Service struct {
	DB *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

func (s *Service) Create(ctx context.Context, actor auth.Actor, content string) (Announcement, error) {
	if !actor.IsHR() && !actor.Root {
		return Announcement{}, ErrForbidden
	}
	var a Announcement
	err := s.DB.QueryRow(ctx, `
    INSERT INTO announcements (content, author_id) VALUES ($1, $2)
    RETURNING id, content, author_id, created_at
  `, content, actor.UserID).Scan(&a.ID, &a.Content, &a.AuthorID, &a.CreatedAt)
	return a, err
}

// Latest returns the newest announcements for the dashboards.
func (s *Service) Latest(ctx context.Context, limit int) ([]Announcement, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.content, COALESCE(a.author_id::text, ''), COALESCE(u.name, ''), a.created_at
    FROM announcements a
    LEFT JOIN users u ON a.author_id = u.id
    ORDER BY a.created_at DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Content, &a.AuthorID, &a.AuthorName, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
