// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/densecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		for j := 0; j < iters; j++ {
			w := densecs.NewWorld()
			ents := w.CreateEntities(numEntities)
			densecs.Insert(w, ents[0], comp1{V: 1, W: 1})
			densecs.Insert(w, ents[0], comp2{V: 2, W: 2})
			for _, e := range ents {
				w.Retain(e)
				densecs.Insert(w, e, comp1{V: int64(e.Index()), W: 0})
			}
		}
	}
}
