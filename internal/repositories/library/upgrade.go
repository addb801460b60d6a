package library

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	redisclient "github.com/KirkDiggler/deckbuilder-api/internal/redis"
)

const scanBatch = 100

// UpgradeReport counts what UpgradeLegacyTeams looked at
type UpgradeReport struct {
	Owners   int
	Teams    int
	Upgraded int
	Failed   int
}

// UpgradeLegacyTeams rewrites every saved v1 team token in the v2 format so the
// team name survives. Entries whose token no longer decodes are counted and left
// alone. With dryRun nothing is written.
func UpgradeLegacyTeams(ctx context.Context, client redisclient.Client, dryRun bool) (*UpgradeReport, error) {
	report := &UpgradeReport{}

	iter := client.Scan(ctx, 0, keyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		report.Owners++

		fields, err := client.HGetAll(ctx, key).Result()
		if err != nil {
			return report, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read library")
		}

		for field, raw := range fields {
			var entry Entry
			if err := json.Unmarshal([]byte(raw), &entry); err != nil || entry.Kind != EntryKindTeam {
				continue
			}
			report.Teams++

			token, changed, err := codec.UpgradeTeamToken(entry.Token, entry.Name)
			if err != nil {
				report.Failed++
				slog.Warn("team token does not decode", "key", key, "entry_id", field, "error", err)
				continue
			}
			if !changed {
				continue
			}
			report.Upgraded++
			if dryRun {
				continue
			}

			entry.Token = token
			data, err := json.Marshal(&entry)
			if err != nil {
				return report, errors.Wrap(err, "failed to marshal library entry")
			}
			if err := client.HSet(ctx, key, field, data).Err(); err != nil {
				return report, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write library entry")
			}
		}
	}
	if err := iter.Err(); err != nil {
		return report, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan libraries")
	}

	return report, nil
}
