package domain

// Категории предметов
const (
	ItemCategoryWeapon = "weapon"
	ItemCategoryArmor  = "armor"
	ItemCategoryPotion = "potion"
	ItemCategoryFood   = "food"
	ItemCategoryMisc   = "misc"
)

// Item is one stack of identical things lying on the floor.
// Effects and equipment live outside the engine; the map only stores stacks.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Glyph    Glyph  `json:"glyph"`
	Count    int    `json:"count"`
}

// StacksWith reports whether two items merge into one stack.
func (i *Item) StacksWith(other *Item) bool {
	return i.Name == other.Name && i.Category == other.Category
}

// ItemPile is an ordered set of stacks with a cap on distinct stacks.
type ItemPile struct {
	stacks  []*Item
	maxSize int
}

// NewItemPile creates an empty pile holding at most maxSize stacks.
func NewItemPile(maxSize int) *ItemPile {
	return &ItemPile{maxSize: maxSize}
}

// WillStack checks whether adding item would grow an existing stack.
func (p *ItemPile) WillStack(item *Item) bool {
	for _, s := range p.stacks {
		if s.StacksWith(item) {
			return true
		}
	}
	return false
}

// Add puts item into the pile. Returns the stack that now holds it, or false if the pile
// is full and the item does not stack.
func (p *ItemPile) Add(item *Item) (*Item, bool) {
	count := item.Count
	if count <= 0 {
		count = 1
	}
	for _, s := range p.stacks {
		if s.StacksWith(item) {
			s.Count += count
			return s, true
		}
	}
	if len(p.stacks) >= p.maxSize {
		return nil, false
	}
	item.Count = count
	p.stacks = append(p.stacks, item)
	return item, true
}

// Remove deletes the stack equal to item (same pointer). Returns false if absent.
func (p *ItemPile) Remove(item *Item) bool {
	for i, s := range p.stacks {
		if s == item {
			copy(p.stacks[i:], p.stacks[i+1:])
			p.stacks[len(p.stacks)-1] = nil
			p.stacks = p.stacks[:len(p.stacks)-1]
			return true
		}
	}
	return false
}

// Clear removes every stack.
func (p *ItemPile) Clear() { p.stacks = p.stacks[:0] }

// Items returns the stacks in insertion order. The slice must not be modified.
func (p *ItemPile) Items() []*Item { return p.stacks }

// Len is the number of distinct stacks.
func (p *ItemPile) Len() int { return len(p.stacks) }

// Empty reports whether the pile holds nothing.
func (p *ItemPile) Empty() bool { return len(p.stacks) == 0 }

// MaxSize is the stack cap.
func (p *ItemPile) MaxSize() int { return p.maxSize }

// Top returns the first stack, drawn when the cell has no creature.
func (p *ItemPile) Top() (*Item, bool) {
	if len(p.stacks) == 0 {
		return nil, false
	}
	return p.stacks[0], true
}

// TransferAll moves every stack from src into dst. Stacks that do not fit stay in src.
func TransferAll(src, dst *ItemPile) {
	kept := src.stacks[:0]
	for _, s := range src.stacks {
		if _, ok := dst.Add(s); !ok {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(src.stacks); i++ {
		src.stacks[i] = nil
	}
	src.stacks = kept
}
