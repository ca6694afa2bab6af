package application_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealscout/dealscout/internal/adapters/outbound/compstore"
	"github.com/dealscout/dealscout/internal/adapters/outbound/config"
	"github.com/dealscout/dealscout/internal/adapters/outbound/logger"
	"github.com/dealscout/dealscout/internal/application"
	"github.com/dealscout/dealscout/internal/domain"
)

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0644))
}

// projectDir returns a temp dir pinned to reference year 2025.
func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeProjectConfig(t, dir, "reference_year: 2025\n")
	return dir
}

func camryRequest(price, mileage int) application.EvaluationRequest {
	return application.EvaluationRequest{
		Vehicle: domain.VehicleListing{
			Year:    domain.IntPtr(2020),
			Make:    "Toyota",
			Model:   "Camry",
			Price:   domain.IntPtr(price),
			Mileage: domain.IntPtr(mileage),
		},
		Inputs: domain.EvaluationInputs{OwnerCount: 1, HasServiceRecords: true},
	}
}

func comps(mileage int, prices ...int) []domain.ComparableListing {
	out := make([]domain.ComparableListing, 0, len(prices))
	for _, p := range prices {
		out = append(out, domain.ComparableListing{Price: domain.IntPtr(p), Mileage: domain.IntPtr(mileage)})
	}
	return out
}

func newEvaluateService(t *testing.T, buf *bytes.Buffer) *application.EvaluateService {
	t.Helper()
	log := logger.Discard()
	if buf != nil {
		log = logger.NewWithWriter(buf, "production", "info")
	}
	return application.NewEvaluateService(config.New(), compstore.New(), log.Logger)
}

func TestEvaluateService_CompBasis(t *testing.T) {
	var buf bytes.Buffer
	svc := newEvaluateService(t, &buf)

	req := camryRequest(20000, 50000)
	req.Comps = comps(50000, 18000, 19000, 20500, 21000, 22000)

	ev, err := svc.Evaluate(req, application.EvaluateOptions{Dir: projectDir(t)})
	require.NoError(t, err)

	assert.Equal(t, 81, ev.FinalScore)
	assert.Equal(t, domain.VerdictBuy, ev.Verdict)
	assert.Equal(t, "comps", ev.ValuationBasis)
	assert.Equal(t, 2025, ev.ReferenceYear)
	assert.Equal(t, 5, ev.CompsUsed)
	assert.Zero(t, ev.SkippedComps)
	require.NotNil(t, ev.CompStats)
	assert.Equal(t, 20500, ev.CompStats.Median)

	assert.Contains(t, buf.String(), `"msg":"evaluation_complete"`)
	assert.Contains(t, buf.String(), `"verdict":"BUY"`)
	assert.Contains(t, buf.String(), `"valuation_basis":"comps"`)
}

func TestEvaluateService_HeuristicBasis(t *testing.T) {
	svc := newEvaluateService(t, nil)

	req := camryRequest(20000, 60000)
	req.Comps = comps(60000, 18000, 19000)

	ev, err := svc.Evaluate(req, application.EvaluateOptions{Dir: projectDir(t)})
	require.NoError(t, err)

	assert.Equal(t, "heuristic", ev.ValuationBasis)
	assert.Equal(t, 65, ev.FinalScore)
	assert.Equal(t, domain.VerdictConsider, ev.Verdict)
	require.NotNil(t, ev.MSRPUsed)
	assert.Equal(t, 32500, *ev.MSRPUsed)
	assert.Nil(t, ev.CompStats)
}

func TestEvaluateService_SkipsInvalidComps(t *testing.T) {
	var buf bytes.Buffer
	svc := newEvaluateService(t, &buf)

	req := camryRequest(20000, 50000)
	req.Comps = append(comps(50000, 18000, 19000, 20500), comps(50000, 300)...)
	req.Comps = append(req.Comps, domain.ComparableListing{Price: domain.IntPtr(21000)})

	ev, err := svc.Evaluate(req, application.EvaluateOptions{Dir: projectDir(t)})
	require.NoError(t, err)

	assert.Equal(t, 3, ev.CompsUsed)
	assert.Equal(t, 2, ev.SkippedComps)
	assert.Contains(t, buf.String(), "skipping invalid comps")
}

func TestEvaluateService_NegativeCompValuesAreSkipped(t *testing.T) {
	var buf bytes.Buffer
	svc := newEvaluateService(t, &buf)

	req := camryRequest(20000, 50000)
	req.Comps = append(comps(50000, 18000, 19000, 20500),
		domain.ComparableListing{Price: domain.IntPtr(21000), Mileage: domain.IntPtr(-1)},
		domain.ComparableListing{Price: domain.IntPtr(-4000), Mileage: domain.IntPtr(40000)},
	)

	ev, err := svc.Evaluate(req, application.EvaluateOptions{Dir: projectDir(t)})
	require.NoError(t, err)

	assert.Equal(t, 3, ev.CompsUsed)
	assert.Equal(t, 2, ev.SkippedComps)
	assert.Equal(t, "comps", ev.ValuationBasis)
	assert.Contains(t, buf.String(), "skipping invalid comps")
}

func TestEvaluateService_MergesSavedComps(t *testing.T) {
	dir := projectDir(t)
	require.NoError(t, compstore.New().Save(dir, comps(50000, 18000, 19000, 20500, 21000)))

	svc := newEvaluateService(t, nil)
	req := camryRequest(20000, 50000)
	req.Comps = comps(50000, 22000)

	ev, err := svc.Evaluate(req, application.EvaluateOptions{Dir: dir, SavedComps: true})
	require.NoError(t, err)
	assert.Equal(t, 5, ev.CompsUsed)
	assert.Equal(t, "comps", ev.ValuationBasis)
	assert.Len(t, req.Comps, 1, "request comps are not modified")

	ev, err = svc.Evaluate(req, application.EvaluateOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, ev.CompsUsed)
	assert.Equal(t, "heuristic", ev.ValuationBasis)
}

func TestEvaluateService_DefaultsOwnerCount(t *testing.T) {
	svc := newEvaluateService(t, nil)
	req := camryRequest(20000, 60000)
	req.Inputs.OwnerCount = 0

	ev, err := svc.Evaluate(req, application.EvaluateOptions{Dir: projectDir(t)})
	require.NoError(t, err)
	assert.Contains(t, ev.RiskScore.Details, "1 owner")
}

func TestEvaluateService_InvalidRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*application.EvaluationRequest)
		wantErr string
	}{
		{
			name:    "negative owners",
			mutate:  func(r *application.EvaluationRequest) { r.Inputs.OwnerCount = -1 },
			wantErr: "inputs.owner_count must satisfy gte=1",
		},
		{
			name:    "negative mileage",
			mutate:  func(r *application.EvaluationRequest) { r.Vehicle.Mileage = domain.IntPtr(-5) },
			wantErr: "vehicle.mileage must satisfy gte=0",
		},
		{
			name:    "unknown use case",
			mutate:  func(r *application.EvaluationRequest) { r.Inputs.UseCases = []domain.UseCase{"racing"} },
			wantErr: "inputs.use_cases[0] must satisfy oneof",
		},
		{
			name:    "bad body style",
			mutate:  func(r *application.EvaluationRequest) { r.Inputs.BodyStyle = "limo" },
			wantErr: "inputs.body_style must satisfy oneof",
		},
	}

	svc := newEvaluateService(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := camryRequest(20000, 60000)
			tt.mutate(&req)

			_, err := svc.Evaluate(req, application.EvaluateOptions{Dir: projectDir(t)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid request")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEvaluateService_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "reference_year: 1200\n")

	_, err := newEvaluateService(t, nil).Evaluate(camryRequest(20000, 60000), application.EvaluateOptions{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestEvaluationRequest_Normalize(t *testing.T) {
	req := application.EvaluationRequest{}
	req.Normalize()

	assert.Equal(t, 1, req.Inputs.OwnerCount)
	assert.Equal(t, domain.DriveUnknown, req.Inputs.Drivetrain)
	assert.Equal(t, domain.BodyUnknown, req.Inputs.BodyStyle)
}

func TestCompsDir(t *testing.T) {
	assert.Equal(t, "/work", application.CompsDir(domain.EvaluatorConfig{}, "/work"))
	assert.Equal(t, "/data", application.CompsDir(domain.EvaluatorConfig{CompsDir: "/data"}, "/work"))
}
