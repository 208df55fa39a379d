package entity

import "github.com/vovakirdan/tui-invaders/internal/core"

// Item size in world units.
const (
	ItemWidth  = 32
	ItemHeight = 32
)

// Item is a falling bonus pickup. Fall speed and point value are fixed at
// construction from its sprite tier.
type Item struct {
	Entity
	speed  int
	points int
}

// NewItem creates an item at (x, y). Tiers 1..3 fall at 2/4/6 and are worth
// 50/100/300 points; any other tag is a neutral drop worth nothing.
func NewItem(x, y int, tag SpriteTag) Item {
	speed, points := 2, 0
	switch tag {
	case SpriteItem1:
		speed, points = 2, 50
	case SpriteItem2:
		speed, points = 4, 100
	case SpriteItem3:
		speed, points = 6, 300
	}
	return Item{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  ItemWidth,
			Height: ItemHeight,
			Sprite: tag,
			Color:  core.ColorItem,
		},
		speed:  speed,
		points: points,
	}
}

// Update moves the item down by its fall speed.
func (it *Item) Update(FrameContext) {
	it.Y += it.speed
}

// Speed returns the fall speed per frame.
func (it *Item) Speed() int {
	return it.speed
}

// PointValue returns the score granted on pickup.
func (it *Item) PointValue() int {
	return it.points
}

// ItemPool recycles falling items.
type ItemPool struct {
	*Pool[Item]
}

// NewItemPool creates an empty item pool.
func NewItemPool(capacity int) *ItemPool {
	return &ItemPool{Pool: NewPool[Item](capacity)}
}

// Acquire hands out an item built by NewItem.
func (p *ItemPool) Acquire(x, y int, tag SpriteTag) Handle {
	h, it := p.Alloc()
	*it = NewItem(x, y, tag)
	return h
}
