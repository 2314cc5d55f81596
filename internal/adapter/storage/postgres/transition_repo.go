package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-voucher/internal/core/domain"
	"smart-voucher/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// TransitionRepo implements ports.TransitionRepository. Every Commit runs in
// one database transaction.
type TransitionRepo struct {
	pool Pool
}

// NewTransitionRepo creates a new TransitionRepo.
func NewTransitionRepo(pool Pool) *TransitionRepo {
	return &TransitionRepo{pool: pool}
}

// Commit applies t to the ledger tables and appends it to the journal.
func (r *TransitionRepo) Commit(ctx context.Context, t *domain.Transition) error {
	if t.AppliedAt.IsZero() {
		t.AppliedAt = time.Now().UTC()
	}
	wallet := t.Wallet.Hex()

	var (
		voucherID = t.VoucherID
		balance   *uint256.Int
		seq       int64
	)

	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO webshops (wallet) VALUES ($1) ON CONFLICT (wallet) DO NOTHING`, wallet,
		); err != nil {
			return fmt.Errorf("ensure webshop: %w", err)
		}

		if t.Kind.IsSigned() {
			tag, err := tx.Exec(ctx,
				`UPDATE webshops SET nonce = nonce + 1, last_activity = $3 WHERE wallet = $1 AND nonce = $2`,
				wallet, t.Nonce, t.AppliedAt,
			)
			if err != nil {
				return fmt.Errorf("advance nonce: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("webshop %s, transition nonce %d: %w", wallet, t.Nonce, ports.ErrStaleNonce)
			}
		}

		switch t.Kind {
		case domain.ActionCreate:
			id, err := r.createVoucher(ctx, tx, t)
			if err != nil {
				return err
			}
			voucherID = id

		case domain.ActionRedeem:
			b, err := r.debitVoucher(ctx, tx, t)
			if err != nil {
				return err
			}
			balance = b

		case domain.ActionAddPartners:
			for _, p := range t.Partners {
				if _, err := tx.Exec(ctx,
					`INSERT INTO webshop_partners (webshop, partner) VALUES ($1, $2) ON CONFLICT (webshop, partner) DO NOTHING`,
					wallet, p.Hex(),
				); err != nil {
					return fmt.Errorf("add partner: %w", err)
				}
			}

		case domain.ActionRemovePartners:
			for _, p := range t.Partners {
				if _, err := tx.Exec(ctx,
					`DELETE FROM webshop_partners WHERE webshop = $1 AND partner = $2`,
					wallet, p.Hex(),
				); err != nil {
					return fmt.Errorf("remove partner: %w", err)
				}
			}

		case domain.ActionBlockWebshop:
			if _, err := tx.Exec(ctx,
				`UPDATE webshops SET blocked = $2 WHERE wallet = $1`, wallet, t.Blocked,
			); err != nil {
				return fmt.Errorf("block webshop: %w", err)
			}

		case domain.ActionBlockVoucher:
			tag, err := tx.Exec(ctx, `UPDATE vouchers SET blocked = $2 WHERE id = $1`, t.VoucherID, t.Blocked)
			if err != nil {
				return fmt.Errorf("block voucher: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("voucher %d: %w", t.VoucherID, ports.ErrNotFound)
			}

		default:
			return fmt.Errorf("unknown transition kind %q", t.Kind)
		}

		partners := make([]string, 0, len(t.Partners))
		for _, p := range t.Partners {
			partners = append(partners, p.Hex())
		}
		err := tx.QueryRow(ctx,
			`INSERT INTO transitions (id, kind, wallet, nonce, amount, voucher_id, partners, blocked, signature, balance, tx_hash, block_number, applied_at)
			VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10::numeric, $11, $12, $13)
			RETURNING seq`,
			t.ID, string(t.Kind), wallet, t.Nonce, decimal(t.Amount), voucherID, partners, t.Blocked,
			t.Signature, decimal(balance), receiptHash(t.Receipt), t.Receipt.BlockNumber, t.AppliedAt,
		).Scan(&seq)
		if err != nil {
			return fmt.Errorf("append transition: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	t.Seq = seq
	t.VoucherID = voucherID
	if balance != nil {
		t.Balance = balance
	}
	return nil
}

func (r *TransitionRepo) createVoucher(ctx context.Context, tx pgx.Tx, t *domain.Transition) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx,
		`UPDATE ledger_counters SET value = value + 1 WHERE name = $1 RETURNING value - 1`, counterVoucherID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("allocate voucher id: %w", err)
	}
	if t.VoucherID != 0 && t.VoucherID != id {
		return 0, fmt.Errorf("voucher id %d, next %d: %w", t.VoucherID, id, ports.ErrVoucherSequence)
	}

	var order uint64
	err = tx.QueryRow(ctx,
		`UPDATE webshops SET voucher_count = voucher_count + 1 WHERE wallet = $1 RETURNING voucher_count`,
		t.Wallet.Hex(),
	).Scan(&order)
	if err != nil {
		return 0, fmt.Errorf("count voucher: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO vouchers (id, webshop, ord, initial_amount, current_amount, blocked, created_at)
		VALUES ($1, $2, $3, $4::numeric, $4::numeric, FALSE, $5)`,
		id, t.Wallet.Hex(), order, t.Amount.Dec(), t.AppliedAt,
	); err != nil {
		return 0, fmt.Errorf("insert voucher: %w", err)
	}
	return id, nil
}

func (r *TransitionRepo) debitVoucher(ctx context.Context, tx pgx.Tx, t *domain.Transition) (*uint256.Int, error) {
	var left string
	err := tx.QueryRow(ctx,
		`UPDATE vouchers SET current_amount = current_amount - $2::numeric
		WHERE id = $1 AND current_amount >= $2::numeric
		RETURNING current_amount::text`,
		t.VoucherID, t.Amount.Dec(),
	).Scan(&left)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("voucher %d: %w", t.VoucherID, ports.ErrBalanceConflict)
		}
		return nil, fmt.Errorf("debit voucher: %w", err)
	}
	balance, err := uint256.FromDecimal(left)
	if err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", left, err)
	}
	return balance, nil
}

// List returns up to limit transitions with seq > afterSeq.
func (r *TransitionRepo) List(ctx context.Context, afterSeq int64, limit int) ([]*domain.Transition, error) {
	query := `SELECT seq, id, kind, wallet, nonce, amount::text, voucher_id, partners, blocked,
			signature, balance::text, tx_hash, block_number, applied_at
		FROM transitions
		WHERE seq > $1
		ORDER BY seq
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("list transitions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Transition
	for rows.Next() {
		var (
			t               domain.Transition
			kind, wallet    string
			amount, balance *string
			partners        []string
			txHash          string
		)
		if err := rows.Scan(
			&t.Seq, &t.ID, &kind, &wallet, &t.Nonce, &amount, &t.VoucherID, &partners, &t.Blocked,
			&t.Signature, &balance, &txHash, &t.Receipt.BlockNumber, &t.AppliedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}

		t.Kind = domain.ActionKind(kind)
		t.Wallet = common.HexToAddress(wallet)
		t.AppliedAt = t.AppliedAt.UTC()
		if txHash != "" {
			t.Receipt.TxHash = common.HexToHash(txHash)
		}
		for _, p := range partners {
			t.Partners = append(t.Partners, common.HexToAddress(p))
		}
		if t.Amount, err = parseDecimal(amount); err != nil {
			return nil, err
		}
		if t.Balance, err = parseDecimal(balance); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transitions: %w", err)
	}
	return out, nil
}

// decimal renders an optional amount for a ::numeric parameter.
func decimal(v *uint256.Int) *string {
	if v == nil {
		return nil
	}
	s := v.Dec()
	return &s
}

func parseDecimal(s *string) (*uint256.Int, error) {
	if s == nil {
		return nil, nil
	}
	v, err := uint256.FromDecimal(*s)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", *s, err)
	}
	return v, nil
}

func receiptHash(r domain.Receipt) string {
	if r.TxHash == (common.Hash{}) {
		return ""
	}
	return r.TxHash.Hex()
}
