package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/captions/pkg/domain"
)

// ErrNotFound returned when a generation record doesn't exist
var ErrNotFound = errors.New("generation not found")

// ErrMalformedID returned for identifiers that can't be a record id
var ErrMalformedID = errors.New("malformed generation id")

// CaptionRepository handles generation records stored in the captions collection
type CaptionRepository struct {
	db *sqlx.DB
}

// generationSQL represents a generation record for SQL operations
type generationSQL struct {
	ID              string      `db:"id"`
	Topic           string      `db:"topic"`
	Tone            string      `db:"tone"`
	Platform        string      `db:"platform"`
	Length          string      `db:"length"`
	IncludeEmojis   bool        `db:"include_emojis"`
	IncludeHashtags bool        `db:"include_hashtags"`
	Variants        variantsSQL `db:"variants"`
	Favorite        bool        `db:"favorite"`
	FavoriteIndex   *int        `db:"favorite_index"`
	GeneratedAt     time.Time   `db:"generated_at"`
	UpdatedAt       *time.Time  `db:"updated_at"`
}

// variantsSQL is a JSON array of caption strings for SQL operations
type variantsSQL []string

// Value implements driver.Valuer for database storage
func (v variantsSQL) Value() (driver.Value, error) {
	if v == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(v))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (v *variantsSQL) Scan(value any) error {
	var data []byte
	switch val := value.(type) {
	case nil:
		*v = variantsSQL{}
		return nil
	case []byte:
		data = val
	case string:
		data = []byte(val)
	default:
		return fmt.Errorf("unsupported variants type %T", value)
	}
	if len(data) == 0 {
		*v = variantsSQL{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(v))
}

// NewCaptionRepository creates a new caption repository
func NewCaptionRepository(db *sqlx.DB) *CaptionRepository {
	return &CaptionRepository{db: db}
}

// CreateGeneration inserts a new generation record, sets gen.ID and returns it
func (r *CaptionRepository) CreateGeneration(ctx context.Context, gen *domain.Generation) (string, error) {
	id := uuid.NewString()
	rec := &generationSQL{
		ID:              id,
		Topic:           gen.Topic,
		Tone:            gen.Tone,
		Platform:        gen.Platform,
		Length:          gen.Length,
		IncludeEmojis:   gen.IncludeEmojis,
		IncludeHashtags: gen.IncludeHashtags,
		Variants:        variantsSQL(gen.Variants),
		Favorite:        gen.Favorite,
		FavoriteIndex:   gen.FavoriteIndex,
		GeneratedAt:     gen.GeneratedAt.UTC(),
	}
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO captions (
			id, topic, tone, platform, length, include_emojis, include_hashtags,
			variants, favorite, favorite_index, generated_at
		) VALUES (
			:id, :topic, :tone, :platform, :length, :include_emojis, :include_hashtags,
			:variants, :favorite, :favorite_index, :generated_at
		)
	`
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create generation: %w", err)}
		}
		return nil
	}, errCritical)
	if err != nil {
		return "", err
	}

	gen.ID = id
	return id, nil
}

// GetGeneration retrieves a generation record by id
func (r *CaptionRepository) GetGeneration(ctx context.Context, id string) (*domain.Generation, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var rec generationSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM captions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get generation %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get generation: %w", err)
	}
	return r.toDomain(&rec), nil
}

// ListGenerations retrieves up to limit records, most recent first
func (r *CaptionRepository) ListGenerations(ctx context.Context, limit int) ([]domain.Generation, error) {
	query := "SELECT * FROM captions ORDER BY generated_at DESC, rowid DESC LIMIT ?"
	var recs []generationSQL
	if err := r.db.SelectContext(ctx, &recs, query, limit); err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}

	res := make([]domain.Generation, len(recs))
	for i := range recs {
		res[i] = *r.toDomain(&recs[i])
	}
	return res, nil
}

// MarkFavorite sets favorite flag and the favorite variant index of the record
func (r *CaptionRepository) MarkFavorite(ctx context.Context, id string, index int) error {
	if err := validateID(id); err != nil {
		return err
	}

	query := `UPDATE captions SET favorite = 1, favorite_index = ?, updated_at = ? WHERE id = ?`
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, index, time.Now().UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark favorite: %w", err)}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("mark favorite %s: %w", id, ErrNotFound)}
		}
		return nil
	}, errCritical)
}

func (r *CaptionRepository) toDomain(rec *generationSQL) *domain.Generation {
	variants := []string(rec.Variants)
	if variants == nil {
		variants = []string{}
	}
	return &domain.Generation{
		ID:              rec.ID,
		Topic:           rec.Topic,
		Tone:            rec.Tone,
		Platform:        rec.Platform,
		Length:          rec.Length,
		IncludeEmojis:   rec.IncludeEmojis,
		IncludeHashtags: rec.IncludeHashtags,
		Variants:        variants,
		Favorite:        rec.Favorite,
		FavoriteIndex:   rec.FavoriteIndex,
		GeneratedAt:     rec.GeneratedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

// validateID checks id is a canonical uuid
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w %q: %v", ErrMalformedID, id, err)
	}
	return nil
}
