package cluster

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/npillmayer/clusters/internal/tracing"
	"github.com/npillmayer/clusters/uniprop"
)

// engine is the per-script cluster formation strategy. Engines consume
// characters from a source until one complete cluster can be emitted.
type engine interface {
	next(src Source, dst *Cluster) bool
	reset()
}

// engineState is the state shared by all engines: the single pending
// character an engine may buffer across calls, plus the syllable
// accumulation buffer.
type engineState struct {
	pending     SourceChar
	havePending bool
	syl         syllable
}

func (e *engineState) reset() {
	e.havePending = false
	e.syl.reset()
}

func (e *engineState) take(src Source) (SourceChar, bool) {
	if e.havePending {
		e.havePending = false
		return e.pending, true
	}
	return src.Next()
}

func (e *engineState) stash(sc SourceChar) {
	e.pending, e.havePending = sc, true
}

// emitOther emits a non-syllabic character as its own cluster on a
// complex-script path: whitespace, punctuation, stray joiners. A CR
// directly followed by LF is consumed as one newline cluster.
func (e *engineState) emitOther(src Source, cur SourceChar, dst *Cluster) bool {
	e.syl.push(cur, simpleShapeClass(cur.Ch, cur.Info.Properties()))
	if cur.Ch == '\r' {
		if nxt, ok := src.Next(); ok {
			if nxt.Ch == '\n' {
				e.syl.push(nxt, simpleShapeClass(nxt.Ch, nxt.Info.Properties()))
			} else {
				e.stash(nxt)
			}
		}
	}
	e.syl.emit(dst, false)
	return true
}

// Engines are bounded, short-lived state holders; parsers are created
// per script run, so we pool engine instances.
type enginePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
	make  func() engine
}

var simplePool, usePool, myanmarPool *enginePool

func init() {
	simplePool = newEnginePool(func() engine { return &simpleEngine{} })
	usePool = newEnginePool(func() engine { return &useEngine{} })
	myanmarPool = newEnginePool(func() engine { return &myanmarEngine{} })
}

func newEnginePool(maker func() engine) *enginePool {
	p := &enginePool{ctx: context.Background(), make: maker}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return maker(), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	p.opool = pool.NewObjectPool(p.ctx, factory, config)
	return p
}

func (p *enginePool) borrow() engine {
	o, err := p.opool.BorrowObject(p.ctx)
	if err != nil {
		tracing.P("pool", "engine").Errorf("borrow failed: %v", err)
		return p.make()
	}
	return o.(engine)
}

func (p *enginePool) release(e engine) {
	e.reset()
	_ = p.opool.ReturnObject(p.ctx, e)
}

// Parser produces the shaping clusters of one run of same-script text.
// It is a pull-based, single-threaded generator: each call to Next
// yields ownership of one complete cluster to the caller. Callers are
// responsible for pre-splitting text into same-script runs (see
// package segment); the parser never validates the script of incoming
// characters.
type Parser struct {
	script uniprop.Script
	src    Source
	eng    engine
	pool   *enginePool
	done   bool
}

// NewParser creates a cluster parser for one script run. The script
// selects the engine: Myanmar routes to the Myanmar engine, other
// complex scripts to the generic Use engine, everything else to the
// simple segmenter.
func NewParser(script uniprop.Script, src Source) *Parser {
	p := &Parser{script: script, src: src}
	switch {
	case script.IsMyanmar():
		p.pool = myanmarPool
	case script.IsComplex():
		p.pool = usePool
	default:
		p.pool = simplePool
	}
	p.eng = p.pool.borrow()
	p.eng.reset()
	tracing.P("script", script.Name()).Debugf("cluster parser created")
	return p
}

// Script returns the script the parser was constructed for.
func (p *Parser) Script() uniprop.Script {
	return p.script
}

// Next advances the parser by one cluster, writing it into dst. It
// returns false exactly when the input source is exhausted; dst is
// left untouched in that case. Once exhausted, the parser stays
// exhausted.
func (p *Parser) Next(dst *Cluster) bool {
	if p.done {
		return false
	}
	if !p.eng.next(p.src, dst) {
		p.done = true
		p.pool.release(p.eng)
		p.eng = nil
		return false
	}
	return true
}
