package booking_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"tradeforge/internal/booking"
	"tradeforge/internal/persistence"
	"tradeforge/internal/testutil"
	"tradeforge/internal/trade"
)

func setupBookingDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	testutil.RequireIntegration(t)

	db, cleanup := testutil.SetupTestDB(t)

	migrator := persistence.NewMigrator(db, "../../migrations", zerolog.Nop())
	if err := migrator.Up(context.Background()); err != nil {
		cleanup()
		t.Fatalf("run migrations: %v", err)
	}

	return db, cleanup
}

func countTrades(t *testing.T, db *sql.DB, tradeID string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM trades WHERE trade_id = $1", tradeID).Scan(&n); err != nil {
		t.Fatalf("count trades: %v", err)
	}
	return n
}

func sampleRecord(id string) *booking.TradeRecord {
	d := envelope(id)
	d.MaturityDate = datePtr(2030, 3, 10)
	return booking.MapTrade(&trade.CreditDefaultSwap{
		Details:         d,
		ReferenceEntity: "ACME_CORP",
		SpreadBps:       250,
		RecoveryRate:    decPtr("40"),
	})
}

func TestBook_SimulationModeRollsBack(t *testing.T) {
	db, cleanup := setupBookingDB(t)
	defer cleanup()

	sim := booking.NewSimulator(db, true, zerolog.Nop())

	if err := sim.Book(sampleRecord("SIM-001")); err != nil {
		t.Fatalf("book: %v", err)
	}
	if n := countTrades(t, db, "SIM-001"); n != 0 {
		t.Errorf("simulation mode left %d rows, want 0", n)
	}
}

func TestBook_ProductionModeCommits(t *testing.T) {
	db, cleanup := setupBookingDB(t)
	defer cleanup()

	sim := booking.NewSimulator(db, false, zerolog.Nop())

	if err := sim.Book(sampleRecord("PROD-001")); err != nil {
		t.Fatalf("book: %v", err)
	}
	if n := countTrades(t, db, "PROD-001"); n != 1 {
		t.Errorf("production mode wrote %d rows, want 1", n)
	}

	var tradeType, status string
	var notional decimal.Decimal
	err := db.QueryRow(
		"SELECT trade_type, status, notional FROM trades WHERE trade_id = $1", "PROD-001",
	).Scan(&tradeType, &status, &notional)
	if err != nil {
		t.Fatalf("read back row: %v", err)
	}
	if tradeType != "CREDIT_DEFAULT_SWAP" || status != "SUCCESS" {
		t.Errorf("row: got %s/%s", tradeType, status)
	}
	if !notional.Equal(decimal.NewFromInt(1_000_000)) {
		t.Errorf("notional: got %s", notional)
	}
}

func TestBook_EveryVariantInserts(t *testing.T) {
	db, cleanup := setupBookingDB(t)
	defer cleanup()

	sim := booking.NewSimulator(db, false, zerolog.Nop())

	records := []*booking.TradeRecord{
		booking.MapTrade(&trade.InterestRateSwap{
			Details:           envelope("V-IRS"),
			FixedRate:         decPtr("3.5"),
			FloatingRateIndex: "SOFR",
			Direction:         "PAY_FIXED",
		}),
		booking.MapTrade(&trade.EquitySwap{
			Details:        envelope("V-EQS"),
			ReferenceAsset: "AAPL",
			ReturnType:     "TOTAL_RETURN",
			FundingLeg:     "SOFR_PLUS_SPREAD",
		}),
		booking.MapTrade(&trade.FXForward{
			Details: func() trade.Details {
				d := envelope("V-FXF")
				d.MaturityDate = datePtr(2025, 9, 10)
				return d
			}(),
			CurrencyPair: "EUR/USD",
			ForwardRate:  decimal.RequireFromString("1.0900"),
		}),
		booking.MapTrade(&trade.EquityOption{
			Details:         envelope("V-OPT"),
			OptionType:      "CALL",
			StrikePrice:     decimal.NewFromInt(180),
			Premium:         decPtr("8.50"),
			ExpiryDate:      date(2025, 6, 20),
			UnderlyingAsset: "AAPL",
		}),
		sampleRecord("V-CDS"),
	}

	for _, rec := range records {
		if err := sim.Book(rec); err != nil {
			t.Errorf("book %s: %v", rec.TradeID, err)
		}
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM trades WHERE trade_id LIKE 'V-%'").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != len(records) {
		t.Errorf("inserted %d rows, want %d", n, len(records))
	}
}

func TestBook_WriteErrorSurfaces(t *testing.T) {
	db, cleanup := setupBookingDB(t)
	defer cleanup()

	sim := booking.NewSimulator(db, false, zerolog.Nop())

	// A duplicate trade_id violates the unique constraint. The failed
	// attempt must roll back and surface the error.
	if err := sim.Book(sampleRecord("ERR-001")); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	err := sim.Book(sampleRecord("ERR-001"))
	if err == nil {
		t.Fatal("expected unique violation on duplicate trade id")
	}
	if !errors.Is(err, booking.ErrBookingFailed) {
		t.Errorf("error not wrapped as ErrBookingFailed: %v", err)
	}
	if n := countTrades(t, db, "ERR-001"); n != 1 {
		t.Errorf("got %d rows, want 1", n)
	}
}
