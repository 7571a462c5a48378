package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revelaction/semparse/storage"
	"github.com/revelaction/semparse/verbnet"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// SenseStore keeps each sense as a JSON blob, indexed by base id and by
// member lemma.
type SenseStore struct {
	pool *sqlitex.Pool
}

var _ storage.SenseRepository = (*SenseStore)(nil)

func NewSenseStore(pool *sqlitex.Pool) *SenseStore {
	return &SenseStore{pool: pool}
}

func (h *SenseStore) ByBaseIdAndLemma(id, lemma string) ([]verbnet.Sense, error) {
	return h.query(`
		SELECT s.data FROM senses s
		JOIN sense_members m ON m.sense_id = s.id
		WHERE s.base_id = ? AND m.lemma = ?
		ORDER BY s.id`, id, lemma)
}

func (h *SenseStore) Read(id string) (verbnet.Sense, error) {
	senses, err := h.query("SELECT data FROM senses WHERE id = ?", id)
	if err != nil {
		return verbnet.Sense{}, err
	}
	if len(senses) == 0 {
		return verbnet.Sense{}, fmt.Errorf("sense %s: %w", id, storage.ErrNotFound)
	}
	return senses[0], nil
}

func (h *SenseStore) List() ([]verbnet.Sense, error) {
	return h.query("SELECT data FROM senses ORDER BY id")
}

func (h *SenseStore) query(query string, args ...interface{}) ([]verbnet.Sense, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	senses := []verbnet.Sense{}
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s verbnet.Sense
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return err
			}
			senses = append(senses, s)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return senses, nil
}

func (h *SenseStore) Write(s verbnet.Sense) (err error) {
	if s.Id == "" {
		return fmt.Errorf("sense without id")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, `
		INSERT INTO senses (id, base_id, data) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			base_id = excluded.base_id,
			data = excluded.data
	`, &sqlitex.ExecOptions{
		Args: []interface{}{s.Id, s.Base(), string(data)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert sense %s: %w", s.Id, err)
	}

	err = sqlitex.Execute(conn, "DELETE FROM sense_members WHERE sense_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{s.Id},
	})
	if err != nil {
		return err
	}

	for _, lemma := range s.Members {
		err = sqlitex.Execute(conn, "INSERT OR IGNORE INTO sense_members (lemma, sense_id) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{lemma, s.Id},
		})
		if err != nil {
			return fmt.Errorf("failed to insert member %s: %w", lemma, err)
		}
	}

	return nil
}
