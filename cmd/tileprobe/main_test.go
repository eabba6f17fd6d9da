package main

import (
	"testing"

	"go.uber.org/zap"

	"github.com/phanxgames/tilekit"
)

func TestRunLandsOnFloor(t *testing.T) {
	layer := tilekit.NewCollisionLayer(10, 10)
	layer.Fill(0, 5, 10, 1, 0) // floor at y 80
	m := tilekit.NewTileCollisionManager(tilekit.CollisionConfig{TileSize: 16})
	m.Register(0, tilekit.SolidBlock{})

	cfg := probeConfig{
		Ticks:   20,
		Width:   16,
		Height:  16,
		Gravity: 1,
		MaxFall: 8,
	}
	hits, err := run(layer, m, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// Falls for 11 ticks, then rests on the floor for the remaining 9.
	if hits != 9 {
		t.Errorf("hits = %d, want 9", hits)
	}
}

func TestRunUnsupportedTile(t *testing.T) {
	layer := tilekit.NewCollisionLayer(4, 4)
	layer.SetTile(0, 1, 7)
	m := tilekit.NewTileCollisionManager(tilekit.CollisionConfig{TileSize: 16})

	cfg := probeConfig{Ticks: 10, Width: 8, Height: 8, Gravity: 4, MaxFall: 8}
	if _, err := run(layer, m, cfg, zap.NewNop()); err == nil {
		t.Error("expected an error for an unregistered tile id")
	}
}
