package main

import "github.com/l1jgo/ecsengine/ecs"

var (
	positionID = mustParseID("8f14e45f-ceea-467e-aae5-1e9250710001")
	velocityID = mustParseID("8f14e45f-ceea-467e-aae5-1e9250710002")
	healthID   = mustParseID("8f14e45f-ceea-467e-aae5-1e9250710003")
)

func mustParseID(s string) ecs.Identifier {
	id, err := ecs.ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

type Position struct {
	X, Y float64
}

func (Position) ComponentIdentifier() ecs.Identifier { return positionID }

type Velocity struct {
	DX, DY float64
}

func (Velocity) ComponentIdentifier() ecs.Identifier { return velocityID }

type Health struct {
	HP int
}

func (Health) ComponentIdentifier() ecs.Identifier { return healthID }
