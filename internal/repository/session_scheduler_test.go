package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		switch target := dest[i].(type) {
		case *int64:
			*target = r.values[i].(int64)
		case *int:
			*target = r.values[i].(int)
		case *float64:
			*target = r.values[i].(float64)
		case *string:
			*target = r.values[i].(string)
		case *time.Time:
			*target = r.values[i].(time.Time)
		case **string:
			v, _ := r.values[i].(*string)
			*target = v
		case **int64:
			v, _ := r.values[i].(*int64)
			*target = v
		}
	}
	return nil
}

type stubTx struct {
	rows []stubRow

	queryRowCalls int
	commits       int
	rollbacks     int
}

func (t *stubTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }

func (t *stubTx) Commit(_ context.Context) error {
	t.commits++
	return nil
}

func (t *stubTx) Rollback(_ context.Context) error {
	t.rollbacks++
	return nil
}

func (t *stubTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *stubTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }

func (t *stubTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *stubTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *stubTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *stubTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	row := t.rows[t.queryRowCalls]
	t.queryRowCalls++
	return row
}

func (t *stubTx) Conn() *pgx.Conn { return nil }

type stubTxBeginner struct {
	tx       *stubTx
	beginErr error
}

func (b *stubTxBeginner) Begin(_ context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func subscriptionRowValues() []any {
	now := time.Now().UTC()
	return []any{
		int64(11),               // id
		int64(42),               // user_id
		"Priya Nair",            // user_name
		"priya@example.com",     // user_email
		"9876543210",            // user_phone
		int64(7),                // coach_id
		"Arjun Mehta",           // coach_name
		"pkg_2",                 // package_id
		"Quarterly",             // package_name
		3,                       // duration
		12,                      // total_sessions
		3,                       // used_sessions
		12999.0,                 // price
		now,                     // start_date
		now.AddDate(0, 3, 0),    // end_date
		"active",                // status
		"completed",             // payment_status
		(*string)(nil),          // order_id
		(*string)(nil),          // payment_session_id
		(*string)(nil),          // payment_id
		(*string)(nil),          // notes
		now,                     // created_at
		now,                     // updated_at
	}
}

func sessionRowValues() []any {
	now := time.Now().UTC()
	subID := int64(11)
	return []any{
		int64(501),          // id
		&subID,              // subscription_id
		"Priya Nair",        // user_name
		"priya@example.com", // user_email
		int64(7),            // coach_id
		"Arjun Mehta",       // coach_name
		"Quarterly",         // package_name
		"2026-03-02",        // date
		"10:00",             // start_time
		"11:00",             // end_time
		"fitness",           // session_type
		"pending",           // status
		(*string)(nil),      // notes
		now,                 // created_at
		now,                 // updated_at
	}
}

func scheduleInput() CreateSessionInput {
	subID := int64(11)
	return CreateSessionInput{
		SubscriptionID: &subID,
		UserName:       "Priya Nair",
		UserEmail:      "priya@example.com",
		CoachID:        7,
		CoachName:      "Arjun Mehta",
		PackageName:    "Quarterly",
		Date:           "2026-03-02",
		StartTime:      "10:00",
		EndTime:        "11:00",
		SessionType:    "fitness",
	}
}

func TestScheduleCommitsConsumeAndInsertTogether(t *testing.T) {
	tx := &stubTx{rows: []stubRow{
		{values: subscriptionRowValues()},
		{values: sessionRowValues()},
	}}
	scheduler := NewSessionScheduler(&stubTxBeginner{tx: tx})

	session, err := scheduler.Schedule(context.Background(), 11, scheduleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ID != 501 || session.StartTime != "10:00" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if tx.commits != 1 {
		t.Fatalf("expected one commit, got %d", tx.commits)
	}
	if tx.queryRowCalls != 2 {
		t.Fatalf("expected consume + insert, got %d statements", tx.queryRowCalls)
	}
}

func TestScheduleRollsBackConsumeWhenInsertFails(t *testing.T) {
	// The insert hits the sessions unique index; the used_sessions
	// increment from the same transaction must not survive.
	tx := &stubTx{rows: []stubRow{
		{values: subscriptionRowValues()},
		{err: &pgconn.PgError{Code: "23505"}},
	}}
	scheduler := NewSessionScheduler(&stubTxBeginner{tx: tx})

	_, err := scheduler.Schedule(context.Background(), 11, scheduleInput())
	if !errors.Is(err, ErrDuplicateSlot) {
		t.Fatalf("expected ErrDuplicateSlot, got %v", err)
	}
	if tx.commits != 0 {
		t.Fatal("nothing must commit when the insert fails")
	}
	if tx.rollbacks == 0 {
		t.Fatal("transaction was not rolled back")
	}
}

func TestScheduleSurfacesExhaustionWithoutCommit(t *testing.T) {
	tx := &stubTx{rows: []stubRow{
		{err: pgx.ErrNoRows},
	}}
	scheduler := NewSessionScheduler(&stubTxBeginner{tx: tx})

	_, err := scheduler.Schedule(context.Background(), 11, scheduleInput())
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
	if tx.commits != 0 {
		t.Fatal("nothing must commit when the allotment is exhausted")
	}
	if tx.queryRowCalls != 1 {
		t.Fatalf("insert must not run after a failed consume, got %d statements", tx.queryRowCalls)
	}
}
