// Package simulation advances empires through time.
//
// A Service owns the clock, the random source and the raid queues, and runs
// one tick at a time: production is settled, finished work completes, raids
// and events may spawn, governors act, and arrived raids are resolved.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/napolitain/idle-empire/internal/bonus"
	"github.com/napolitain/idle-empire/internal/combat"
	"github.com/napolitain/idle-empire/internal/governor"
	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/production"
	"github.com/napolitain/idle-empire/internal/random"
	"github.com/napolitain/idle-empire/internal/selector"
	"github.com/napolitain/idle-empire/internal/store"
	"github.com/napolitain/idle-empire/internal/territory"
)

// Raid travel and threat tuning
const (
	BaseTravelSeconds = 7200 // travel time of an enemy with zero speed
	TravelSpeedScale  = 50   // speed that halves the travel time
	MaxThreat         = 10
	ThreatHeadroom    = 2   // most threat a stockpile adds above the province level
	ExplorerDiscovery = 2.0 // discovery chance multiplier for explorer governors
)

// Store persists empires and the raid log. *store.DB satisfies it.
//
// ResolveRaid must mark the raid resolved, call apply and save the empire
// atomically, and must not call apply for a raid that is already resolved.
type Store interface {
	SaveEmpire(emp *models.Empire) error
	RecordRaid(empireID string, r *models.Raid) error
	ResolveRaid(emp *models.Empire, id string, o models.CombatOutcome, apply func()) error
}

// Options configures a Service. Zero chances disable the matching roll.
type Options struct {
	RaidChance        float64 // per elapsed hour, per province
	EventChance       float64 // per elapsed hour, per province
	DiscoveryChance   float64 // per elapsed hour, per province
	ResearchThreshold int     // 0 keeps the governor default

	Territories []models.Territory // discoverable pool

	Clock  Clock         // read once per tick; defaults to time.Now
	Random random.Source // defaults to a randomly seeded source
	Logger *slog.Logger  // defaults to slog.Default()
	Store  Store         // optional
}

// Service runs ticks. Ticks are serialized.
type Service struct {
	mu sync.Mutex

	catalog    *models.Catalog
	composer   *bonus.Composer
	calculator *production.Calculator
	governors  *governor.Engine
	matcher    *selector.Matcher

	opts        Options
	clock       Clock
	rng         random.Source
	logger      *slog.Logger
	store       Store
	queues      map[string]*RaidQueue
	territories []models.Territory
}

// NewService creates a tick service over a balance catalog. Every enemy,
// event and territory condition is compiled up front.
func NewService(catalog *models.Catalog, opts Options) (*Service, error) {
	matcher := selector.NewMatcher()
	if err := selector.Validate(matcher, catalog.Enemies); err != nil {
		return nil, fmt.Errorf("enemy pool: %w", err)
	}
	if err := selector.Validate(matcher, catalog.Events); err != nil {
		return nil, fmt.Errorf("event pool: %w", err)
	}
	if err := selector.Validate(matcher, opts.Territories); err != nil {
		return nil, fmt.Errorf("territory pool: %w", err)
	}

	s := &Service{
		catalog:     catalog,
		composer:    bonus.NewComposer(catalog),
		calculator:  production.NewCalculator(catalog),
		governors:   governor.NewEngine(catalog),
		matcher:     matcher,
		opts:        opts,
		clock:       opts.Clock,
		rng:         opts.Random,
		logger:      opts.Logger,
		store:       opts.Store,
		queues:      make(map[string]*RaidQueue),
		territories: slices.Clone(opts.Territories),
	}
	if opts.ResearchThreshold > 0 {
		s.governors.ResearchThreshold = opts.ResearchThreshold
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, err
		}
		s.rng = random.New(seed)
	}
	return s, nil
}

// ProvinceProduction is the production settled for one province
type ProvinceProduction struct {
	ProvinceID string
	Hours      float64
	Deltas     models.ResourceBundle
}

// Completion is a construction or research that finished this tick
type Completion struct {
	ProvinceID   string // empty for research
	BuildingType models.BuildingType
	Level        int
	TechKey      string
}

// EventReport is a random event that struck a province
type EventReport struct {
	ProvinceID string
	Event      string
	Effects    models.ResourceBundle
}

// Discovery is a territory found by a province
type Discovery struct {
	ProvinceID string
	Territory  models.Territory
	Windfall   models.ResourceBundle
}

// DecisionReport is the action a governor took this tick
type DecisionReport struct {
	ProvinceID string
	Decision   models.GovernorDecision
	Applied    bool
	XP         int
}

// RaidReport is a raid resolved this tick
type RaidReport struct {
	Raid    *models.Raid
	Outcome models.CombatOutcome
}

// TickReport summarizes one tick
type TickReport struct {
	At          time.Time
	Production  []ProvinceProduction
	Completed   []Completion
	Spawned     []*models.Raid
	Events      []EventReport
	Discoveries []Discovery
	Decisions   []DecisionReport
	Resolved    []RaidReport
}

// Threat returns the raid threat a province attracts: its level plus one per
// thousand stockpiled resources, at most ThreatHeadroom above the level
func Threat(p *models.Province) int {
	extra := min(ThreatHeadroom, int(selector.Attractiveness(p.Resources)))
	return min(MaxThreat, p.Level()+extra)
}

// TravelSeconds returns how long an enemy takes to reach its target
func TravelSeconds(enemy models.EnemyForce) int64 {
	return int64(math.Round(BaseTravelSeconds / (1 + max(0, enemy.Speed)/TravelSpeedScale)))
}

// Schedule queues a raid against an empire, e.g. one restored from the store
func (s *Service) Schedule(empireID string, r *models.Raid) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue(empireID).Push(r)
}

// Pending returns the unresolved raids of an empire in arrival order
func (s *Service) Pending(empireID string) []*models.Raid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue(empireID).Pending()
}

func (s *Service) queue(empireID string) *RaidQueue {
	q, ok := s.queues[empireID]
	if !ok {
		q = NewRaidQueue()
		s.queues[empireID] = q
	}
	return q
}

// Tick advances the empire to the clock's current instant
func (s *Service) Tick(ctx context.Context, emp *models.Empire) (TickReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return TickReport{}, err
	}

	now := s.clock()
	report := TickReport{At: now}
	logger := s.logger.With("empire", emp.ID)

	q := s.queue(emp.ID)
	for _, r := range emp.Raids {
		q.Push(r)
	}

	hours := make([]float64, len(emp.Provinces))
	for i, p := range emp.Provinces {
		h, err := s.settle(emp, p, now, &report)
		if err != nil {
			return report, fmt.Errorf("settle province %s: %w", p.ID, err)
		}
		hours[i] = h
	}

	s.complete(emp, now, &report)

	for i, p := range emp.Provinces {
		if err := s.maybeRaid(emp, p, hours[i], now, &report); err != nil {
			return report, err
		}
	}
	for i, p := range emp.Provinces {
		s.maybeEvent(emp, p, hours[i], &report, logger)
	}
	for i, p := range emp.Provinces {
		s.maybeDiscover(emp, p, hours[i], &report, logger)
	}

	for _, p := range emp.Provinces {
		if err := s.govern(emp, p, now, &report, logger); err != nil {
			return report, err
		}
	}

	if err := s.resolveRaids(emp, now, &report, logger); err != nil {
		return report, err
	}

	if s.store != nil {
		if err := s.store.SaveEmpire(emp); err != nil {
			return report, fmt.Errorf("save empire: %w", err)
		}
	}

	logger.Debug("tick complete",
		"at", now.Unix(),
		"spawned", len(report.Spawned),
		"resolved", len(report.Resolved),
		"events", len(report.Events),
	)
	return report, nil
}

// Run ticks the empire every interval until ctx is cancelled
func (s *Service) Run(ctx context.Context, emp *models.Empire, interval time.Duration, onTick func(TickReport)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			report, err := s.Tick(ctx, emp)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			if onTick != nil {
				onTick(report)
			}
		}
	}
}

func (s *Service) settle(emp *models.Empire, p *models.Province, now time.Time, report *TickReport) (float64, error) {
	if p.LastSettled == 0 {
		p.LastSettled = now.Unix()
		return 0, nil
	}

	personality := models.NoPersonality
	if p.Governor != nil {
		personality = p.Governor.Personality
	}

	res, err := s.calculator.Calculate(production.Input{
		Buildings:   p.Buildings,
		Personality: personality,
		LastSettled: time.Unix(p.LastSettled, 0),
		Researched:  emp.Researched,
		Now:         now,
	})
	if err != nil {
		return 0, err
	}

	res.Deltas, p.Accrued = production.Accrue(res, p.Accrued)
	p.Resources = production.Settle(p.Resources, res)
	p.LastSettled = max(p.LastSettled, now.Unix())
	report.Production = append(report.Production, ProvinceProduction{
		ProvinceID: p.ID,
		Hours:      res.ElapsedHours,
		Deltas:     res.Deltas,
	})
	return res.ElapsedHours, nil
}

func (s *Service) complete(emp *models.Empire, now time.Time, report *TickReport) {
	ts := now.Unix()

	for _, p := range emp.Provinces {
		active := p.ActiveConstruction[:0]
		for _, c := range p.ActiveConstruction {
			if c.CompleteAt > ts {
				active = append(active, c)
				continue
			}
			p.SetBuildingLevel(c.Type, c.ToLevel)
			report.Completed = append(report.Completed, Completion{ProvinceID: p.ID, BuildingType: c.Type, Level: c.ToLevel})
		}
		p.ActiveConstruction = active
	}

	active := emp.ActiveResearch[:0]
	for _, r := range emp.ActiveResearch {
		if r.CompleteAt > ts {
			active = append(active, r)
			continue
		}
		if !emp.IsResearched(r.Key) {
			emp.Researched = append(emp.Researched, r.Key)
		}
		report.Completed = append(report.Completed, Completion{TechKey: r.Key})
	}
	emp.ActiveResearch = active
}

// roll draws once and reports whether an hourly chance fires over the given hours
func (s *Service) roll(perHour, hours float64) bool {
	chance := min(1, perHour*hours)
	if chance <= 0 {
		return false
	}
	return s.rng.Float64() < chance
}

func (s *Service) maybeRaid(emp *models.Empire, p *models.Province, hours float64, now time.Time, report *TickReport) error {
	if !s.roll(s.opts.RaidChance, hours) {
		return nil
	}

	ctx := selector.NewContext(p, emp.Researched, Threat(p))
	enemy, ok, err := s.matcher.PickEnemy(s.catalog.Enemies, ctx, s.rng)
	if err != nil {
		s.logger.Warn("enemy condition failed", "province", p.ID, "error", err)
	}
	if !ok {
		return nil
	}

	raid := &models.Raid{
		ID:         uuid.NewString(),
		ProvinceID: p.ID,
		Enemy:      enemy,
		SpawnedAt:  now.Unix(),
		ArrivesAt:  now.Unix() + TravelSeconds(enemy),
	}
	if s.store != nil {
		if err := s.store.RecordRaid(emp.ID, raid); err != nil {
			return fmt.Errorf("record raid: %w", err)
		}
	}
	s.queue(emp.ID).Push(raid)
	emp.Raids = append(emp.Raids, raid)
	report.Spawned = append(report.Spawned, raid)

	s.logger.Info("raid spawned",
		"empire", emp.ID,
		"province", p.ID,
		"enemy", enemy.Name,
		"arrives_at", raid.ArrivesAt,
	)
	return nil
}

// EventEffects returns the deltas an event applies. Plague losses are scaled by plague prevention.
func EventEffects(event models.RandomEvent, b models.TechnologyBonus) models.ResourceBundle {
	effects := event.Effects
	if !event.Plague {
		return effects
	}
	for i, v := range effects {
		if v < 0 {
			effects[i] = -int(math.Round(float64(-v) * b.PlaguePrevention))
		}
	}
	return effects
}

func (s *Service) maybeEvent(emp *models.Empire, p *models.Province, hours float64, report *TickReport, logger *slog.Logger) {
	if !s.roll(s.opts.EventChance, hours) {
		return
	}

	ctx := selector.NewContext(p, emp.Researched, Threat(p))
	event, ok, err := s.matcher.PickEvent(s.catalog.Events, ctx, s.rng)
	if err != nil {
		logger.Warn("event condition failed", "province", p.ID, "error", err)
	}
	if !ok {
		return
	}

	effects := EventEffects(event, s.composer.Compose(emp.Researched))
	p.Resources = p.Resources.Add(effects).Clamp()
	report.Events = append(report.Events, EventReport{ProvinceID: p.ID, Event: event.Name, Effects: effects})
	logger.Info("event", "province", p.ID, "name", event.Name)
}

func (s *Service) maybeDiscover(emp *models.Empire, p *models.Province, hours float64, report *TickReport, logger *slog.Logger) {
	pool := slices.DeleteFunc(slices.Clone(s.territories), func(t models.Territory) bool {
		return emp.IsDiscovered(t.Name)
	})
	if len(pool) == 0 {
		return
	}
	perHour := s.opts.DiscoveryChance
	if p.Governor != nil && p.Governor.Personality == models.Explorer {
		perHour *= ExplorerDiscovery
	}
	if !s.roll(perHour, hours) {
		return
	}

	ctx := selector.NewContext(p, emp.Researched, Threat(p))
	t, ok, err := s.matcher.PickTerritory(pool, ctx, s.rng)
	if err != nil {
		logger.Warn("territory condition failed", "province", p.ID, "error", err)
	}
	if !ok {
		return
	}

	emp.Discovered = append(emp.Discovered, t.Name)
	windfall := territory.Windfall(t)
	p.Resources = p.Resources.Add(windfall)
	report.Discoveries = append(report.Discoveries, Discovery{ProvinceID: p.ID, Territory: t, Windfall: windfall})
	logger.Info("territory discovered", "province", p.ID, "territory", t.Name)
}

func (s *Service) govern(emp *models.Empire, p *models.Province, now time.Time, report *TickReport, logger *slog.Logger) error {
	if p.Governor == nil {
		return nil
	}

	d, err := s.governors.Decide(p, emp)
	if err != nil {
		return fmt.Errorf("decide for province %s: %w", p.ID, err)
	}

	entry := DecisionReport{ProvinceID: p.ID, Decision: d}
	if d.Kind != models.DecisionWait {
		err := s.governors.Apply(p, emp, d, now)
		switch {
		case errors.Is(err, governor.ErrInsufficientResources), errors.Is(err, governor.ErrStaleDecision):
			logger.Debug("decision not applied", "province", p.ID, "error", err)
		case err != nil:
			return fmt.Errorf("apply decision for province %s: %w", p.ID, err)
		default:
			entry.Applied = true
			entry.XP = governor.AwardExperience(p.Governor, d)
			logger.Info("governor acted", "province", p.ID, "decision", d.Kind, "reason", d.Reason)
		}
	}
	report.Decisions = append(report.Decisions, entry)
	return nil
}

func (s *Service) resolveRaids(emp *models.Empire, now time.Time, report *TickReport, logger *slog.Logger) error {
	arrived := s.queue(emp.ID).PopArrived(now.Unix())
	if len(arrived) == 0 {
		return nil
	}

	b := s.composer.Compose(emp.Researched)
	for _, raid := range arrived {
		p := emp.Province(raid.ProvinceID)
		if p == nil {
			logger.Warn("raid target missing", "raid", raid.ID, "province", raid.ProvinceID)
			emp.RemoveRaid(raid.ID)
			continue
		}

		outcome := combat.Resolve(raid.Enemy, combat.AggregateDefense(p, b), s.rng)
		apply := func() {
			raid.Resolved = true
			raid.Outcome = &outcome
			combat.ApplyOutcome(p, outcome)
			emp.RemoveRaid(raid.ID)
		}

		if s.store == nil {
			apply()
		} else {
			err := s.store.ResolveRaid(emp, raid.ID, outcome, apply)
			if errors.Is(err, store.ErrRaidAlreadyResolved) {
				logger.Warn("raid already resolved", "raid", raid.ID)
				emp.RemoveRaid(raid.ID)
				continue
			}
			if err != nil {
				return fmt.Errorf("resolve raid %s: %w", raid.ID, err)
			}
		}
		report.Resolved = append(report.Resolved, RaidReport{Raid: raid, Outcome: outcome})

		logger.Info("raid resolved",
			"raid", raid.ID,
			"province", p.ID,
			"enemy", raid.Enemy.Name,
			"result", outcome.Result,
			"certainty", outcome.VictoryCertainty,
		)
	}
	return nil
}
