package service

import (
	"context"
	"fmt"
	"time"

	"pump_sizing"
	"pump_sizing/internal/repository"
)

// ---- Repository fakes ----

type fakeRunRepo struct {
	appended  []pump_sizing.CalculationRun
	appendErr error

	listResp []pump_sizing.CalculationRun
	listErr  error
	lastFrom time.Time
	lastTo   time.Time
	lastKind string

	latest    pump_sizing.CalculationRun
	latestErr error
}

func (f *fakeRunRepo) Append(ctx context.Context, run pump_sizing.CalculationRun) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, run)
	return nil
}

func (f *fakeRunRepo) List(ctx context.Context, from, to time.Time, kind string) ([]pump_sizing.CalculationRun, error) {
	f.lastFrom, f.lastTo, f.lastKind = from, to, kind
	return f.listResp, f.listErr
}

func (f *fakeRunRepo) Latest(ctx context.Context) (pump_sizing.CalculationRun, error) {
	return f.latest, f.latestErr
}

type fakeAuthRepo struct {
	users  map[string]*pump_sizing.User
	nextID int
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: map[string]*pump_sizing.User{}, nextID: 1}
}

func (f *fakeAuthRepo) Create(username, passwordHash string) (int, error) {
	if _, exists := f.users[username]; exists {
		return 0, fmt.Errorf("user %q already exists", username)
	}
	id := f.nextID
	f.nextID++
	f.users[username] = &pump_sizing.User{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (f *fakeAuthRepo) GetByUsername(username string) (*pump_sizing.User, error) {
	return f.users[username], nil
}

// ---- Shared helpers ----

func newTestService(runs *fakeRunRepo) *Service {
	repos := &repository.Repository{Runs: runs, Auth: newFakeAuthRepo()}
	return NewService(repos, Config{SigningKey: "test-signing-key"})
}

// refSystemParams is a 100 m run of DN100 pipe lifting water 5 m.
func refSystemParams() SystemParams {
	return SystemParams{
		Fluid:       FluidSpec{TemperatureC: 20},
		Segment:     pump_sizing.PipeSegment{DiameterM: 0.1, LengthM: 100, RoughnessM: 5e-5},
		StaticHeadM: 5,
		FlowRate:    0.01,
	}
}

// refPumpSamples samples H=34.5−9375q², P=2000+150000q, η=0.30+35q−700q²
// and NPSHr=2+20q+1500q² at five flows.
func refPumpSamples() CurveFitParams {
	qs := []float64{0, 0.01, 0.02, 0.03, 0.04}
	p := CurveFitParams{}
	for _, q := range qs {
		p.Samples.Head = append(p.Samples.Head, pump_sizing.CurvePoint{Q: q, V: 34.5 - 9375*q*q})
		p.Samples.Power = append(p.Samples.Power, pump_sizing.CurvePoint{Q: q, V: 2000 + 150000*q})
		p.Samples.Efficiency = append(p.Samples.Efficiency, pump_sizing.CurvePoint{Q: q, V: 0.30 + 35*q - 700*q*q})
		p.Samples.NPSHR = append(p.Samples.NPSHR, pump_sizing.CurvePoint{Q: q, V: 2 + 20*q + 1500*q*q})
	}
	return p
}

func lastRunKind(f *fakeRunRepo) string {
	if len(f.appended) == 0 {
		return ""
	}
	return f.appended[len(f.appended)-1].Kind
}
