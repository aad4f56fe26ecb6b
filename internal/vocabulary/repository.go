package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// ErrDuplicate is returned when a create violates the unique natural key.
var ErrDuplicate = errors.New("record already exists")

// WordRepository defines storage operations for words.
type WordRepository interface {
	Create(ctx context.Context, vietnameseWord, englishDefinition string) (*Word, error)
	FindAll(ctx context.Context) ([]Word, error)
	FindByID(ctx context.Context, id int64) (*Word, error)
}

// GrammarRepository defines storage operations for grammar points.
type GrammarRepository interface {
	Create(ctx context.Context, grammarPoint, englishExplanation string, exampleSentence *string) (*Grammar, error)
	FindAll(ctx context.Context) ([]Grammar, error)
	FindByID(ctx context.Context, id int64) (*Grammar, error)
}

// DBWordRepository implements WordRepository on a relational store.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

// Create inserts a new word and returns the stored row including the
// generated id and creation timestamp. Returns ErrDuplicate when the
// vietnamese word already exists.
func (r *DBWordRepository) Create(ctx context.Context, vietnameseWord, englishDefinition string) (*Word, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO words (vietnamese_word, english_definition, created_at) VALUES (?, ?, ?)",
		vietnameseWord, englishDefinition, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("word %q: %w", vietnameseWord, ErrDuplicate)
		}
		return nil, fmt.Errorf("db.ExecContext(insert word) > %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("result.LastInsertId() > %w", err)
	}

	word, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, fmt.Errorf("word %d not found after insert", id)
	}
	return word, nil
}

// FindAll returns all words ordered by id.
func (r *DBWordRepository) FindAll(ctx context.Context) ([]Word, error) {
	var words []Word
	if err := r.db.SelectContext(ctx, &words, "SELECT * FROM words ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words) > %w", err)
	}
	return words, nil
}

// FindByID returns the word with the given id, or nil if not found.
func (r *DBWordRepository) FindByID(ctx context.Context, id int64) (*Word, error) {
	var word Word
	err := r.db.GetContext(ctx, &word, "SELECT * FROM words WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word) > %w", err)
	}
	return &word, nil
}

// DBGrammarRepository implements GrammarRepository on a relational store.
type DBGrammarRepository struct {
	db *sqlx.DB
}

// NewDBGrammarRepository creates a new DBGrammarRepository.
func NewDBGrammarRepository(db *sqlx.DB) *DBGrammarRepository {
	return &DBGrammarRepository{db: db}
}

// Create inserts a new grammar point and returns the stored row. Returns
// ErrDuplicate when the grammar point already exists.
func (r *DBGrammarRepository) Create(ctx context.Context, grammarPoint, englishExplanation string, exampleSentence *string) (*Grammar, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO grammar (grammar_point, english_explanation, example_sentence, created_at) VALUES (?, ?, ?, ?)",
		grammarPoint, englishExplanation, exampleSentence, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("grammar point %q: %w", grammarPoint, ErrDuplicate)
		}
		return nil, fmt.Errorf("db.ExecContext(insert grammar) > %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("result.LastInsertId() > %w", err)
	}

	grammar, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if grammar == nil {
		return nil, fmt.Errorf("grammar %d not found after insert", id)
	}
	return grammar, nil
}

// FindAll returns all grammar points ordered by id.
func (r *DBGrammarRepository) FindAll(ctx context.Context) ([]Grammar, error) {
	var grammar []Grammar
	if err := r.db.SelectContext(ctx, &grammar, "SELECT * FROM grammar ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(grammar) > %w", err)
	}
	return grammar, nil
}

// FindByID returns the grammar point with the given id, or nil if not found.
func (r *DBGrammarRepository) FindByID(ctx context.Context, id int64) (*Grammar, error) {
	var grammar Grammar
	err := r.db.GetContext(ctx, &grammar, "SELECT * FROM grammar WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(grammar) > %w", err)
	}
	return &grammar, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1062: ER_DUP_ENTRY
		return mysqlErr.Number == 1062
	}

	return false
}
