package sim

import (
	"context"
	"fmt"
	"log"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"bennu-impact-sim/internal/config"
)

// greptimeClient is the subset of the ingester client the writer needs.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter exports result rows to GreptimeDB via the ingester client.
// The table is created on first write.
type GreptimeDBWriter struct {
	client greptimeClient
	table  string
}

// NewGreptimeDBWriter connects to the configured GreptimeDB instance.
func NewGreptimeDBWriter(cfg config.Greptime) (*GreptimeDBWriter, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("greptime endpoint not configured")
	}
	gcfg := greptime.NewConfig(cfg.Endpoint).
		WithPort(cfg.Port).
		WithDatabase(cfg.Database)
	client, err := greptime.NewClient(gcfg)
	if err != nil {
		return nil, fmt.Errorf("greptime client: %w", err)
	}
	return &GreptimeDBWriter{client: client, table: cfg.Table}, nil
}

// Write inserts a single result row.
func (w *GreptimeDBWriter) Write(row ResultRow) error {
	return w.WriteBatch([]ResultRow{row})
}

func (w *GreptimeDBWriter) newTable() (*table.Table, error) {
	tbl, err := table.New(w.table)
	if err != nil {
		return nil, err
	}
	columns := []struct {
		name string
		tag  bool
		typ  types.ColumnType
	}{
		{"scenario", true, types.STRING},
		{"consequence_model", true, types.STRING},
		{"run_id", false, types.STRING},
		{"threshold_model", false, types.STRING},
		{"diameter_km", false, types.FLOAT64},
		{"velocity_km_s", false, types.FLOAT64},
		{"deflection_force_cm_s", false, types.FLOAT64},
		{"approach_angle_deg", false, types.FLOAT64},
		{"lead_time_years", false, types.FLOAT64},
		{"will_impact", false, types.BOOLEAN},
		{"miss_distance_km", false, types.FLOAT64},
		{"energy_megatons", false, types.FLOAT64},
		{"crater_diameter_km", false, types.FLOAT64},
		{"location", false, types.STRING},
		{"severity", false, types.STRING},
		{"outcome", false, types.STRING},
	}
	for _, c := range columns {
		if c.tag {
			err = tbl.AddTagColumn(c.name, c.typ)
		} else {
			err = tbl.AddFieldColumn(c.name, c.typ)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}
	return tbl, nil
}

// WriteBatch inserts multiple result rows.
func (w *GreptimeDBWriter) WriteBatch(rows []ResultRow) error {
	if len(rows) == 0 {
		return nil
	}
	tbl, err := w.newTable()
	if err != nil {
		return err
	}
	for _, r := range rows {
		err := tbl.AddRow(
			r.Scenario,
			r.ConsequenceModel,
			r.RunID,
			r.ThresholdModel,
			r.Params.DiameterKM,
			r.Params.VelocityKMS,
			r.Params.DeflectionForce,
			r.AngleDeg(),
			r.LeadTimeYears,
			r.Result.WillImpact,
			r.Result.MissDistanceKM,
			r.Result.EnergyMegatons,
			r.CraterDiameterKM(),
			string(r.Result.Location),
			string(r.Result.Severity),
			r.Result.Outcome,
			r.Timestamp,
		)
		if err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] Write failed: %v", err)
		return err
	}

	log.Printf("[GreptimeDBWriter] wrote %d rows", len(rows))
	return nil
}
