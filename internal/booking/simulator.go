package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Transaction deadline for a single booking attempt.
const bookingTimeout = 10 * time.Second

// ErrBookingFailed wraps every database-side booking error so callers
// can branch with errors.Is without parsing messages.
var ErrBookingFailed = errors.New("database booking failed")

// Simulator books trade records inside fresh, independent transaction
// scopes. In simulation mode (the default) every write is rolled back
// after it executes, so the write path is exercised without durable
// effect. In production mode a clean write is committed. Any write
// error rolls back and is re-signalled regardless of mode.
type Simulator struct {
	db             *sql.DB
	simulationMode bool
	log            zerolog.Logger
}

func NewSimulator(db *sql.DB, simulationMode bool, logger zerolog.Logger) *Simulator {
	mode := "PRODUCTION (commit)"
	if simulationMode {
		mode = "SIMULATION (rollback)"
	}
	logger.Info().Str("mode", mode).Msg("booking simulator initialized")

	return &Simulator{
		db:             db,
		simulationMode: simulationMode,
		log:            logger,
	}
}

// Book writes the record in a new transaction, then commits or rolls
// back according to mode. The transaction context is deliberately not
// derived from the pipeline's: a dispatcher that has stopped waiting
// must not cancel a write mid-transaction.
func (s *Simulator) Book(record *TradeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), bookingTimeout)
	defer cancel()

	attemptID := uuid.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", ErrBookingFailed, err)
	}

	if err := insertRecord(ctx, tx, record); err != nil {
		tx.Rollback()
		s.log.Error().
			Err(err).
			Str("trade_id", record.TradeID).
			Str("attempt_id", attemptID.String()).
			Msg("database error for trade")
		return fmt.Errorf("%w: %w", ErrBookingFailed, err)
	}

	s.log.Info().
		Str("trade_id", record.TradeID).
		Str("counterparty", record.Counterparty).
		Str("notional", record.Notional.String()).
		Str("attempt_id", attemptID.String()).
		Msg("booked trade")

	if s.simulationMode {
		if err := tx.Rollback(); err != nil {
			return fmt.Errorf("%w: rollback: %w", ErrBookingFailed, err)
		}
		s.log.Debug().
			Str("trade_id", record.TradeID).
			Msg("transaction rolled back (simulation mode)")
		return nil
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrBookingFailed, err)
	}
	s.log.Info().
		Str("trade_id", record.TradeID).
		Msg("transaction committed (production mode)")
	return nil
}

func insertRecord(ctx context.Context, tx *sql.Tx, r *TradeRecord) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO trades (
			trade_id, trade_type, trade_date, settlement_date, maturity_date,
			counterparty, notional, currency,
			fixed_rate, floating_rate_index, floating_spread_bps, direction,
			reference_asset, return_type, funding_leg,
			currency_pair, forward_rate,
			option_type, strike_price, premium, expiry_date, underlying_asset,
			reference_entity, spread_bps, recovery_rate,
			processed_at, processing_duration_ms, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
		)`,
		r.TradeID, r.TradeType, r.TradeDate, r.SettlementDate, r.MaturityDate,
		r.Counterparty, r.Notional, r.Currency,
		nullDecimal(r.FixedRate), r.FloatingRateIndex, r.FloatingSpreadBps, r.Direction,
		r.ReferenceAsset, r.ReturnType, r.FundingLeg,
		r.CurrencyPair, nullDecimal(r.ForwardRate),
		r.OptionType, nullDecimal(r.StrikePrice), nullDecimal(r.Premium), r.ExpiryDate, r.UnderlyingAsset,
		r.ReferenceEntity, r.SpreadBps, r.RecoveryRate,
		r.ProcessedAt, r.ProcessingDurationMs, r.Status,
	)
	return err
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
