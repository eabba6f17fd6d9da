// Package tiled builds tilekit collision layers from Tiled TMX maps.
//
// A level names one tile layer as its collision layer. Each non-empty cell
// becomes tile id gid-1 (unique across tilesets). The tileset tile property
// "block" selects the resolver for that id:
//
//	"", "solid"      tilekit.SolidBlock
//	"platform"       tilekit.PlatformBlock
//	"45_up_right"    tilekit.SlopeBlock{Rising: true}
//	"45_up_left"     tilekit.SlopeBlock{Rising: false}
//
// Maps that mark ramps with a "slope" property instead of "block" are read
// the same way.
package tiled

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
	"github.com/phanxgames/tilekit"
)

// Block kinds read from the tileset "block" property.
const (
	BlockSolid        = "solid"
	BlockPlatform     = "platform"
	BlockSlopeUpRight = "45_up_right"
	BlockSlopeUpLeft  = "45_up_left"
	DefaultLayerName  = "collision"
	blockProperty     = "block"
	slopeProperty     = "slope"
)

// Level is the collision data of one TMX map.
type Level struct {
	Layer      *tilekit.CollisionLayer
	TileWidth  int
	TileHeight int

	// Blocks maps each tile id used by the layer to its block kind.
	Blocks map[int]string
}

// LoadLevel parses tmxPath from fsys and builds the collision layer from the
// tile layer called layerName (DefaultLayerName when empty).
func LoadLevel(fsys fs.FS, tmxPath, layerName string) (*Level, error) {
	if layerName == "" {
		layerName = DefaultLayerName
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(levelMap, layerName)
}

// FromMap builds a Level from an already parsed map.
func FromMap(levelMap *tiled.Map, layerName string) (*Level, error) {
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("tiled: non-square tiles %dx%d are not supported",
			levelMap.TileWidth, levelMap.TileHeight)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == layerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("tiled: layer %q: %w", layerName, tilekit.ErrNotFound)
	}

	level := &Level{
		Layer:      tilekit.NewCollisionLayer(levelMap.Width, levelMap.Height),
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Blocks:     make(map[int]string),
	}

	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) {
				break
			}
			tile := layer.Tiles[i]
			if tile == nil || tile.IsNil() {
				continue
			}
			id := int(tile.Tileset.FirstGID+tile.ID) - 1
			level.Layer.SetTile(x, y, id)

			if _, seen := level.Blocks[id]; seen {
				continue
			}
			var kind string
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				kind = tilesetTile.Properties.GetString(blockProperty)
				if kind == "" {
					kind = tilesetTile.Properties.GetString(slopeProperty)
				}
			}
			level.Blocks[id] = kind
		}
	}
	return level, nil
}

// CollisionConfig returns a manager configuration matching the map's tile
// size.
func (l *Level) CollisionConfig() tilekit.CollisionConfig {
	return tilekit.CollisionConfig{TileSize: l.TileWidth}
}

// Resolver returns the resolver for a block kind.
func Resolver(kind string) (tilekit.BlockResolver, error) {
	switch kind {
	case "", BlockSolid:
		return tilekit.SolidBlock{}, nil
	case BlockPlatform:
		return tilekit.PlatformBlock{Tolerance: tilekit.DefaultPlatformTolerance}, nil
	case BlockSlopeUpRight:
		return tilekit.SlopeBlock{Rising: true}, nil
	case BlockSlopeUpLeft:
		return tilekit.SlopeBlock{Rising: false}, nil
	default:
		return nil, fmt.Errorf("tiled: block kind %q: %w", kind, tilekit.ErrUnsupportedTileID)
	}
}

// Configure registers a resolver on m for every tile id in the level.
func (l *Level) Configure(m *tilekit.TileCollisionManager) error {
	for id, kind := range l.Blocks {
		r, err := Resolver(kind)
		if err != nil {
			return fmt.Errorf("tiled: tile %d: %w", id, err)
		}
		m.Register(id, r)
	}
	return nil
}

// NewManager creates a collision manager sized and configured for l.
func (l *Level) NewManager() (*tilekit.TileCollisionManager, error) {
	m := tilekit.NewTileCollisionManager(l.CollisionConfig())
	if err := l.Configure(m); err != nil {
		return nil, err
	}
	return m, nil
}
