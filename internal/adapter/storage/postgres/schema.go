package postgres

const counterVoucherID = "voucher_id"

// Amounts are NUMERIC(78,0) so any uint256 fits.
const schema = `
CREATE TABLE IF NOT EXISTS webshops (
    wallet        TEXT PRIMARY KEY,
    nonce         BIGINT NOT NULL DEFAULT 0,
    blocked       BOOLEAN NOT NULL DEFAULT FALSE,
    voucher_count BIGINT NOT NULL DEFAULT 0,
    last_activity TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS webshop_partners (
    webshop  TEXT NOT NULL REFERENCES webshops (wallet),
    partner  TEXT NOT NULL,
    position BIGSERIAL,
    PRIMARY KEY (webshop, partner)
);

CREATE TABLE IF NOT EXISTS vouchers (
    id             BIGINT PRIMARY KEY,
    webshop        TEXT NOT NULL REFERENCES webshops (wallet),
    ord            BIGINT NOT NULL,
    initial_amount NUMERIC(78, 0) NOT NULL CHECK (initial_amount > 0),
    current_amount NUMERIC(78, 0) NOT NULL CHECK (current_amount >= 0 AND current_amount <= initial_amount),
    blocked        BOOLEAN NOT NULL DEFAULT FALSE,
    created_at     TIMESTAMPTZ NOT NULL,
    UNIQUE (webshop, ord)
);

CREATE TABLE IF NOT EXISTS ledger_counters (
    name  TEXT PRIMARY KEY,
    value BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS transitions (
    seq          BIGSERIAL PRIMARY KEY,
    id           UUID NOT NULL UNIQUE,
    kind         TEXT NOT NULL,
    wallet       TEXT NOT NULL,
    nonce        BIGINT NOT NULL,
    amount       NUMERIC(78, 0),
    voucher_id   BIGINT NOT NULL DEFAULT 0,
    partners     TEXT[] NOT NULL DEFAULT '{}',
    blocked      BOOLEAN NOT NULL DEFAULT FALSE,
    signature    BYTEA,
    balance      NUMERIC(78, 0),
    tx_hash      TEXT NOT NULL DEFAULT '',
    block_number BIGINT NOT NULL DEFAULT 0,
    applied_at   TIMESTAMPTZ NOT NULL
);
`
