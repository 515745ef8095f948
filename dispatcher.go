package cecs

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// systemStage is a registered system plus its position in the dependency
// DAG: which predecessors it waits on (and how many) at the start of every
// tick, and which systems become eligible once it finishes.
type systemStage struct {
	id              SystemID
	system          genericSystem
	dependencyCount int
	waitingOn       []SystemID
	dependents      []SystemID
}

// systemPacket is one unit of work handed to a dispatcher worker.
type systemPacket struct {
	id    SystemID
	stage *systemStage
	world *World
}

// completion reports a finished (or panicked) system back to Run.
type completion struct {
	id       SystemID
	panicVal any
}

// DispatcherBuilder registers systems and their ordering constraints, then
// builds a Dispatcher with a fixed compatibility graph and worker pool.
type DispatcherBuilder struct {
	systems    []genericSystem
	deps       map[SystemID][]SystemID
	threads    int
	registerer prometheus.Registerer
	logger     *zap.Logger
}

// NewDispatcherBuilder creates a builder with GOMAXPROCS workers by default.
func NewDispatcherBuilder() *DispatcherBuilder {
	return &DispatcherBuilder{
		deps:    map[SystemID][]SystemID{},
		threads: runtime.GOMAXPROCS(0),
	}
}

// AddSystem registers sys and returns its SystemID, stable for the life of
// the built Dispatcher.
func (b *DispatcherBuilder) AddSystem(sys System) SystemID {
	id := SystemID(len(b.systems))
	b.systems = append(b.systems, systemAdapter{sys: sys})
	return id
}

// After declares that id must not start until every system in deps has
// finished. This is independent of the compatibility graph: two systems
// can be read/write compatible and still need an explicit order (e.g.
// physics before rendering) that the access-conflict check alone wouldn't
// infer.
func (b *DispatcherBuilder) After(id SystemID, deps ...SystemID) *DispatcherBuilder {
	b.deps[id] = append(b.deps[id], deps...)
	return b
}

// ThreadCount overrides the worker pool size.
func (b *DispatcherBuilder) ThreadCount(n int) *DispatcherBuilder {
	b.threads = n
	return b
}

// Registerer supplies a prometheus registry for dispatcher metrics. If
// never called, metrics are registered into a private registry nobody
// scrapes.
func (b *DispatcherBuilder) Registerer(r prometheus.Registerer) *DispatcherBuilder {
	b.registerer = r
	return b
}

// Logger supplies a zap logger for scheduling debug output. Defaults to a
// no-op logger.
func (b *DispatcherBuilder) Logger(l *zap.Logger) *DispatcherBuilder {
	b.logger = l
	return b
}

// Build validates the registration and constructs a Dispatcher, spinning
// up its persistent worker pool. Unlike rayon's ThreadPoolBuilder, Go
// goroutines have no OS-resource-exhaustion failure mode to report, so the
// only build-time failures are programmer errors: no systems, too many
// systems, a non-positive thread count, or a cycle in the After()
// dependencies.
func (b *DispatcherBuilder) Build() (*Dispatcher, error) {
	n := len(b.systems)
	if n == 0 {
		return nil, BuilderError{Reason: "no systems registered"}
	}
	if n > MaxSystems {
		return nil, BuilderError{Reason: "too many systems registered"}
	}
	if b.threads <= 0 {
		return nil, BuilderError{Reason: "thread count must be positive"}
	}

	graph := make(compatGraph, n)
	for i := 0; i < n; i++ {
		fi := b.systems[i].filter()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			fj := b.systems[j].filter()
			if fi.Archetype().AnyOf(fj.WriteArchetype()) || fj.Archetype().AnyOf(fi.WriteArchetype()) {
				continue
			}
			graph[i].set(SystemID(j))
		}
	}

	stages := make([]systemStage, n)
	for i := 0; i < n; i++ {
		stages[i].id = SystemID(i)
		stages[i].system = b.systems[i]
	}
	for id, deps := range b.deps {
		stages[id].waitingOn = append(stages[id].waitingOn, deps...)
		stages[id].dependencyCount = len(stages[id].waitingOn)
		for _, dep := range deps {
			stages[dep].dependents = append(stages[dep].dependents, id)
		}
	}
	if cycle := findDependencyCycle(stages); cycle {
		return nil, BuilderError{Reason: "dependency graph contains a cycle"}
	}

	logger := b.logger
	if logger == nil {
		logger = newNopLogger()
	}
	metrics := newDispatcherMetrics(b.registerer)
	finder := newCliqueFinder(graph)
	finder.onHit = func() {
		metrics.cacheHits.Inc()
		logger.Debug("clique cache hit")
	}
	finder.onMiss = func() {
		metrics.cacheMisses.Inc()
		logger.Debug("clique cache miss")
	}

	d := &Dispatcher{
		stages:      stages,
		clique:      finder,
		threads:     b.threads,
		jobs:        make(chan systemPacket, n),
		completions: make(chan completion, n),
		metrics:     metrics,
		logger:      logger,
	}
	for i := 0; i < b.threads; i++ {
		go d.worker()
	}
	return d, nil
}

// findDependencyCycle runs Kahn's algorithm over the declared After() edges
// to catch a misconfigured builder before any tick runs: a cycle would
// otherwise leave the affected systems permanently stuck with a nonzero
// dependency count, silently skipped every tick instead of erroring.
func findDependencyCycle(stages []systemStage) bool {
	remaining := make([]int, len(stages))
	var queue []SystemID
	for i := range stages {
		remaining[i] = stages[i].dependencyCount
		if remaining[i] == 0 {
			queue = append(queue, SystemID(i))
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range stages[id].dependents {
			remaining[dep]--
			if remaining[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	return visited != len(stages)
}

// Dispatcher runs registered systems once per tick, scheduling the largest
// set of mutually compatible, dependency-ready systems onto a persistent
// pool of worker goroutines at every step.
type Dispatcher struct {
	stages      []systemStage
	clique      *cliqueFinder
	threads     int
	jobs        chan systemPacket
	completions chan completion
	metrics     *dispatcherMetrics
	logger      *zap.Logger
	closed      bool
}

func (d *Dispatcher) worker() {
	for pkt := range d.jobs {
		d.runPacket(pkt)
	}
}

func (d *Dispatcher) runPacket(pkt systemPacket) {
	defer func() {
		if r := recover(); r != nil {
			d.completions <- completion{id: pkt.id, panicVal: r}
		}
	}()
	pkt.stage.system.genericTick(pkt.world.Archetypes())
	d.completions <- completion{id: pkt.id}
}

// Run executes one tick: every registered system runs exactly once, in an
// order that respects both declared dependencies and component access
// conflicts, with as much actual concurrency as the compatibility graph
// allows. A panic inside any one system is recovered and ends the tick:
// no further systems are dispatched, the systems already running are
// waited for, and the first panic is returned as a SystemPanicError.
func (d *Dispatcher) Run(world *World) error {
	world.beginTick()
	defer world.endTick()

	n := len(d.stages)
	remaining := make([]int, n)
	var running, pending systemSet
	for i := range d.stages {
		remaining[i] = d.stages[i].dependencyCount
		if remaining[i] == 0 {
			pending.set(SystemID(i))
		}
	}

	d.metrics.ticks.Inc()

	var firstErr error
	for !pending.isEmpty() || !running.isEmpty() {
		if firstErr != nil {
			pending = systemSet{}
		}
		universe := running.or(pending)
		clique := d.clique.maxClique(universe)
		d.metrics.cliqueSize.Observe(float64(clique.count()))
		d.logger.Debug("clique computed",
			zap.Int("universe_size", universe.count()),
			zap.Int("clique_size", clique.count()))
		toStart := clique.andNot(running)

		if !toStart.isEmpty() {
			var batch []int
			toStart.forEach(func(id SystemID) { batch = append(batch, int(id)) })
			d.logger.Debug("dispatching batch", zap.Ints("system_ids", batch))
		}

		toStart.forEach(func(id SystemID) {
			running.set(id)
			pending.clear(id)
			d.jobs <- systemPacket{id: id, stage: &d.stages[id], world: world}
		})

		if running.isEmpty() {
			continue
		}

		c := <-d.completions
		running.clear(c.id)
		if c.panicVal != nil && firstErr == nil {
			firstErr = SystemPanicError{System: c.id, Recovered: c.panicVal}
		}
		for _, dep := range d.stages[c.id].dependents {
			remaining[dep]--
			if remaining[dep] == 0 {
				pending.set(dep)
			}
		}
	}
	return firstErr
}

// Close shuts down the dispatcher's worker pool. A closed Dispatcher must
// not be used again.
func (d *Dispatcher) Close() {
	if d.closed {
		return
	}
	d.closed = true
	close(d.jobs)
}
