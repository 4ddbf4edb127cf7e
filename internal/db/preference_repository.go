package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/launchtime/launchtheme/internal/models"
	"github.com/launchtime/launchtheme/internal/prefs"
)

// Preference repository errors.
var (
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrInvalidPreference  = errors.New("invalid preference")
)

// PreferenceRepository handles namespaced key/value persistence.
type PreferenceRepository struct {
	db *DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get retrieves a single preference.
func (r *PreferenceRepository) Get(ctx context.Context, namespace, key string) (*models.Preference, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT namespace, key, int_value, string_value, updated_at
		FROM preferences WHERE namespace = ? AND key = ?
	`, namespace, key)

	var pref models.Preference
	var intValue sql.NullInt64
	var stringValue sql.NullString
	var updatedAt string
	if err := row.Scan(&pref.Namespace, &pref.Key, &intValue, &stringValue, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to scan preference: %w", err)
	}
	fillPreference(&pref, intValue, stringValue, updatedAt)
	return &pref, nil
}

// List returns every preference in namespace ordered by key.
func (r *PreferenceRepository) List(ctx context.Context, namespace string) ([]*models.Preference, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT namespace, key, int_value, string_value, updated_at
		FROM preferences WHERE namespace = ?
		ORDER BY key
	`, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	var out []*models.Preference
	for rows.Next() {
		var pref models.Preference
		var intValue sql.NullInt64
		var stringValue sql.NullString
		var updatedAt string
		if err := rows.Scan(&pref.Namespace, &pref.Key, &intValue, &stringValue, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		fillPreference(&pref, intValue, stringValue, updatedAt)
		out = append(out, &pref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preferences: %w", err)
	}
	return out, nil
}

func fillPreference(pref *models.Preference, intValue sql.NullInt64, stringValue sql.NullString, updatedAt string) {
	if intValue.Valid {
		v := intValue.Int64
		pref.IntValue = &v
	}
	if stringValue.Valid {
		v := stringValue.String
		pref.StringValue = &v
	}
	if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		pref.UpdatedAt = t
	}
}

// Apply commits changes to namespace in one transaction.
func (r *PreferenceRepository) Apply(ctx context.Context, namespace string, changes []prefs.Change) error {
	if strings.TrimSpace(namespace) == "" {
		return fmt.Errorf("%w: namespace is required", ErrInvalidPreference)
	}
	if len(changes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, change := range changes {
		if change.Key == "" {
			return fmt.Errorf("%w: key is required", ErrInvalidPreference)
		}
		if change.Remove {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM preferences WHERE namespace = ? AND key = ?`,
				namespace, change.Key,
			); err != nil {
				return fmt.Errorf("failed to delete preference %s: %w", change.Key, err)
			}
			continue
		}

		var intValue, stringValue any
		switch {
		case change.Int != nil:
			intValue = *change.Int
		case change.String != nil:
			stringValue = *change.String
		default:
			return fmt.Errorf("%w: %s has no value", ErrInvalidPreference, change.Key)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO preferences (namespace, key, int_value, string_value, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (namespace, key) DO UPDATE SET
				int_value = excluded.int_value,
				string_value = excluded.string_value,
				updated_at = excluded.updated_at
		`, namespace, change.Key, intValue, stringValue, now); err != nil {
			return fmt.Errorf("failed to upsert preference %s: %w", change.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit preferences: %w", err)
	}
	return nil
}

// Store returns a prefs.Store view of namespace.
func (r *PreferenceRepository) Store(namespace string) *PreferenceStore {
	return &PreferenceStore{repo: r, namespace: namespace}
}

// PreferenceStore adapts one namespace of the repository to prefs.Store.
type PreferenceStore struct {
	repo      *PreferenceRepository
	namespace string
}

var _ prefs.Store = (*PreferenceStore)(nil)

// GetInt returns the int at key, or def when absent or stored as a string.
func (s *PreferenceStore) GetInt(ctx context.Context, key string, def int64) (int64, error) {
	pref, err := s.repo.Get(ctx, s.namespace, key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	if pref.IntValue == nil {
		return def, nil
	}
	return *pref.IntValue, nil
}

// GetString returns the string at key, or def when absent or stored as an int.
func (s *PreferenceStore) GetString(ctx context.Context, key string, def string) (string, error) {
	pref, err := s.repo.Get(ctx, s.namespace, key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	if pref.StringValue == nil {
		return def, nil
	}
	return *pref.StringValue, nil
}

func (s *PreferenceStore) Contains(ctx context.Context, key string) (bool, error) {
	_, err := s.repo.Get(ctx, s.namespace, key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PreferenceStore) Edit() prefs.Editor {
	return &preferenceEditor{store: s}
}

type preferenceEditor struct {
	store   *PreferenceStore
	changes prefs.Changes
}

func (e *preferenceEditor) PutInt(key string, value int64) prefs.Editor {
	e.changes.StageInt(key, value)
	return e
}

func (e *preferenceEditor) PutString(key string, value string) prefs.Editor {
	e.changes.StageString(key, value)
	return e
}

func (e *preferenceEditor) Remove(key string) prefs.Editor {
	e.changes.StageRemove(key)
	return e
}

func (e *preferenceEditor) Apply(ctx context.Context) error {
	err := e.store.repo.Apply(ctx, e.store.namespace, e.changes.List())
	if err == nil {
		e.changes.Reset()
	}
	return err
}
