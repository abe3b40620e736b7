// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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
	iters := 100000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	w := densecs.NewWorld()
	ents := w.CreateEntities(numEntities)
	densecs.Insert(w, ents[0], comp1{})
	densecs.Insert(w, ents[0], comp2{V: 1, W: 1})

	for i := 0; i < iters; i++ {
		c1s, _ := densecs.QueryMut[comp1](w)
		c2s, _ := densecs.Query[comp2](w)
		for i := range c1s {
			c1s[i].V += c2s[i].V
			c1s[i].W += c2s[i].W
		}
	}
}
