package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/twam/circular-buffer/pkg/circular"
	"github.com/twam/circular-buffer/pkg/common"
	"github.com/twam/circular-buffer/pkg/history"
	"github.com/twam/circular-buffer/pkg/utility"
)

// Prices are stored as text so decimal values round-trip exactly.
const createTicksTable = `
CREATE TABLE IF NOT EXISTS tick_history (
	session_id VARCHAR NOT NULL,
	trace_id   BIGINT NOT NULL,
	recorded   TIMESTAMP NOT NULL,
	symbol     VARCHAR NOT NULL,
	ask        VARCHAR NOT NULL,
	bid        VARCHAR NOT NULL,
	ask_volume VARCHAR NOT NULL,
	bid_volume VARCHAR NOT NULL,
	ts         TIMESTAMP NOT NULL
)`

// Store persists tick history windows to a duckdb database and reloads
// them into ring buffers.
type Store struct {
	dataSourceName string
	db             *sql.DB
}

func NewStore(dataSourceName string) *Store {
	return &Store{
		dataSourceName: dataSourceName,
	}
}

func (s *Store) Connect() error {
	db, err := sql.Open("duckdb", s.dataSourceName)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	if _, err := db.Exec(createTicksTable); err != nil {
		_ = db.Close()
		return fmt.Errorf("error creating table: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() {
	_ = s.db.Close()
}

// SaveSnapshot writes recorder entries for one symbol in a single
// transaction. The snapshot is taken as-is; ordering is preserved through
// the tick timestamps.
func (s *Store) SaveSnapshot(ctx context.Context, symbol string, entries []history.Entry[common.Tick]) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tick_history
		(session_id, trace_id, recorded, symbol, ask, bid, ask_volume, bid_volume, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmt)

	for _, e := range entries {
		_, err := stmt.ExecContext(ctx,
			e.SessionID.String(), utility.U64ToI64Unsafe(e.TraceID), e.At, symbol,
			e.Value.Ask, e.Value.Bid, e.Value.AskVolume, e.Value.BidVolume,
			e.Value.TimeStamp)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("error inserting row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// LoadWindow reloads the newest `capacity` ticks of a symbol into a fresh
// ring buffer, oldest first.
func (s *Store) LoadWindow(ctx context.Context, symbol string, capacity int) (*circular.Buffer[common.Tick], error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ask, bid, ask_volume, bid_volume, ts
		FROM tick_history WHERE symbol = ? ORDER BY ts DESC LIMIT ?`, symbol, capacity)
	if err != nil {
		return nil, fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var ticks []common.Tick
	for rows.Next() {
		var tick common.Tick
		timeStamp := time.Time{}
		if err := rows.Scan(&tick.Ask, &tick.Bid, &tick.AskVolume, &tick.BidVolume, &timeStamp); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		tick.Symbol = symbol
		tick.TimeStamp = timeStamp
		ticks = append(ticks, tick)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning rows: %w", err)
	}

	// Rows arrive newest-first; push in reverse so the buffer holds them
	// oldest-to-newest.
	buf := circular.NewBuffer[common.Tick](capacity)
	for i := len(ticks) - 1; i >= 0; i-- {
		buf.PushBack(ticks[i])
	}
	return buf, nil
}

// CountTicks reports how many rows a symbol has accumulated across sessions.
func (s *Store) CountTicks(ctx context.Context, symbol string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tick_history WHERE symbol = ?`, symbol).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting rows: %w", err)
	}
	return count, nil
}
