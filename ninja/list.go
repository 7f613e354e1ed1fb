package ninja

import (
	"log/slog"

	"github.com/ardnew/ninjagen/log"
)

// statementList is the append-only arena every statement of a [File] lives
// in. A slot, once filled, never moves and is never cleared, so a slot index
// is a stable handle for as long as the list is reachable.
type statementList struct {
	guard  guard
	stmts  []*Statement
	rules  map[string]struct{} // names of inserted rules
	logger log.Logger
}

func newStatementList(mode Mode, logger log.Logger) *statementList {
	return &statementList{
		guard:  mode.guard(),
		rules:  make(map[string]struct{}),
		logger: logger,
	}
}

// add appends s and returns its slot index.
func (l *statementList) add(s *Statement) int {
	index := l.insert(s)

	l.logger.Trace("statement added",
		slog.Int("index", index),
		slog.String("kind", s.kind.String()),
	)

	return index
}

func (l *statementList) insert(s *Statement) int {
	l.guard.lock()
	defer l.guard.unlock()

	if s.kind == KindRule {
		l.rules[s.rule.name] = struct{}{}
	}

	l.stmts = append(l.stmts, s)

	return len(l.stmts) - 1
}

// addBuild appends a build edge after verifying its rule was inserted
// (or is phony), all under one write lock.
func (l *statementList) addBuild(b *Build, phony string) int {
	index := func() int {
		l.guard.lock()
		defer l.guard.unlock()

		if _, ok := l.rules[b.rule]; !ok && b.rule != phony {
			panic(ErrUnknownRule.With(slog.String("rule", b.rule)))
		}

		l.stmts = append(l.stmts, &Statement{kind: KindBuild, build: b})

		return len(l.stmts) - 1
	}()

	l.logger.Trace("statement added",
		slog.Int("index", index),
		slog.String("kind", KindBuild.String()),
		slog.String("rule", b.rule),
	)

	return index
}

// at returns the statement in slot index.
func (l *statementList) at(index int) *Statement {
	l.guard.rlock()
	defer l.guard.runlock()

	return l.stmts[index]
}

// len returns the number of statements.
func (l *statementList) len() int {
	l.guard.rlock()
	defer l.guard.runlock()

	return len(l.stmts)
}

// snapshot returns the statements inserted so far. Later insertions are not
// visible through the returned slice, and it cannot be appended to in place.
func (l *statementList) snapshot() []*Statement {
	l.guard.rlock()
	defer l.guard.runlock()

	return l.stmts[:len(l.stmts):len(l.stmts)]
}

// ref is a handle on one slot of a statementList. The list pointer also
// gives the holder the ability to append new statements next to it.
type ref struct {
	list  *statementList
	index int
}

func (r ref) statement() *Statement { return r.list.at(r.index) }

// Index returns the position of the referenced statement in its file.
func (r ref) Index() int { return r.index }
