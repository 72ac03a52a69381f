package sqlite

// initialSchema holds the schema version table and the ledger of option
// migration rules applied per campaign.
const initialSchema = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS applied_rules (
    campaign TEXT NOT NULL,
    rule TEXT NOT NULL,
    from_version TEXT NOT NULL,
    applied_at INTEGER NOT NULL,
    PRIMARY KEY (campaign, rule)
);
`
