// Package cecs is an archetype-based entity-component-system runtime with
// a concurrent system dispatcher.
//
// Entities are created in batches that share one archetype, using a
// ComponentPack:
//
//	type Position struct{ X, Y float64 }
//	type Velocity struct{ DX, DY float64 }
//
//	world := cecs.NewWorld()
//	entities := world.Create(cecs.Pack2[Position, Velocity]{
//		C0: []Position{{X: 0, Y: 0}},
//		C1: []Velocity{{DX: 1, DY: 0}},
//	})
//
// Systems declare the components they touch, and how, before they ever
// run:
//
//	type MoveSystem struct{}
//
//	func (MoveSystem) Components() cecs.Filter {
//		return cecs.NewFilter(cecs.Writes[Position](), cecs.Reads[Velocity]())
//	}
//
//	func (MoveSystem) Tick(gen *cecs.QueryGenerator) {
//		q := cecs.CreateQuery2[Position, Velocity](gen, cecs.ReadWrite, cecs.ReadOnly)
//		defer q.Release()
//		for {
//			_, pos, vel, ok := q.Next()
//			if !ok {
//				break
//			}
//			pos.X += vel.DX
//			pos.Y += vel.DY
//		}
//	}
//
// A Dispatcher schedules every registered system once per tick, running
// as many of them concurrently as their declared access allows:
//
//	builder := cecs.NewDispatcherBuilder()
//	builder.AddSystem(MoveSystem{})
//	dispatcher, err := builder.Build()
//	if err != nil {
//		// handle
//	}
//	defer dispatcher.Close()
//	if err := dispatcher.Run(world); err != nil {
//		// a system panicked; err is a SystemPanicError naming which one
//	}
package cecs
