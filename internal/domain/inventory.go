package domain

import "github.com/google/uuid"

// ItemStack - содержимое занятого слота.
// Для инструментов Durability > 0, для остальных 0 (не изнашивается).
type ItemStack struct {
	ID            string   `json:"id"`
	Kind          ItemKind `json:"kind"`
	Count         int      `json:"count"`
	Durability    int      `json:"durability,omitempty"`
	MaxDurability int      `json:"maxDurability,omitempty"`
}

// Inventory - массив слотов фиксированной длины. nil означает пустой слот.
// Операции Ledger никогда не меняют переданный срез и его стеки: они возвращают новый.
type Inventory []*ItemStack

// NewInventory создает инвентарь из size пустых слотов
func NewInventory(size int) Inventory {
	return make(Inventory, size)
}

func (inv Inventory) clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}

// Count - сколько единиц типа лежит во всех слотах
func (inv Inventory) Count(kind ItemKind) int {
	total := 0
	for _, s := range inv {
		if s != nil && s.Kind == kind {
			total += s.Count
		}
	}
	return total
}

// Has проверяет, что все требования покрыты этим инвентарем
func (inv Inventory) Has(reqs []Ingredient) bool {
	for _, r := range mergeIngredients(reqs) {
		if inv.Count(r.Item) < r.Count {
			return false
		}
	}
	return true
}

// FindTool возвращает индекс слота с инструментом или -1.
// Выбранный слот имеет приоритет, иначе первый слот с ненулевой прочностью.
func (inv Inventory) FindTool(kind ItemKind, selected int) int {
	if selected >= 0 && selected < len(inv) {
		if s := inv[selected]; s != nil && s.Kind == kind {
			return selected
		}
	}
	for i, s := range inv {
		if s != nil && s.Kind == kind && (s.MaxDurability == 0 || s.Durability > 0) {
			return i
		}
	}
	return -1
}

// FreeSlots - количество пустых слотов
func (inv Inventory) FreeSlots() int {
	n := 0
	for _, s := range inv {
		if s == nil {
			n++
		}
	}
	return n
}

// ItemSpec - статическая конфигурация типа предмета
type ItemSpec struct {
	MaxStack      int  `yaml:"max_stack" json:"maxStack"`
	Durable       bool `yaml:"durable" json:"durable"`
	MaxDurability int  `yaml:"max_durability,omitempty" json:"maxDurability,omitempty"`
}

// ItemSpecs - таблица предметов
type ItemSpecs map[ItemKind]ItemSpec

// Ingredient - строка требования или результата: тип и количество
type Ingredient struct {
	Item  ItemKind `yaml:"item" json:"item"`
	Count int      `yaml:"count" json:"count"`
}

// Ledger реализует правила стекования поверх таблицы предметов.
type Ledger struct {
	Specs ItemSpecs
}

func NewLedger(specs ItemSpecs) Ledger {
	return Ledger{Specs: specs}
}

// Add раскладывает count единиц: сначала доливает существующие неполные стеки
// по порядку слотов, затем занимает пустые слоты. Возвращает, сколько реально добавлено.
// durability учитывается только для изнашиваемых предметов; 0 означает "новый".
func (l Ledger) Add(inv Inventory, kind ItemKind, count, durability int) (Inventory, int) {
	spec, ok := l.Specs[kind]
	if !ok || spec.MaxStack <= 0 || count <= 0 {
		return inv, 0
	}

	out := inv.clone()
	remaining := count

	for i, s := range out {
		if remaining <= 0 {
			break
		}
		if s == nil || s.Kind != kind || s.Count >= spec.MaxStack {
			continue
		}
		add := min(remaining, spec.MaxStack-s.Count)
		next := *s
		next.Count += add
		out[i] = &next
		remaining -= add
	}

	for i, s := range out {
		if remaining <= 0 {
			break
		}
		if s != nil {
			continue
		}
		add := min(remaining, spec.MaxStack)
		stack := &ItemStack{ID: uuid.NewString(), Kind: kind, Count: add}
		if spec.Durable {
			stack.MaxDurability = spec.MaxDurability
			stack.Durability = spec.MaxDurability
			if durability > 0 && durability < spec.MaxDurability {
				stack.Durability = durability
			}
		}
		out[i] = stack
		remaining -= add
	}

	return out, count - remaining
}

// Remove атомарно забирает count единиц, начиная с последнего подходящего слота.
// Если всего меньше count, возвращает исходный инвентарь и false.
func (l Ledger) Remove(inv Inventory, kind ItemKind, count int) (Inventory, bool) {
	if count <= 0 {
		return inv, true
	}
	if inv.Count(kind) < count {
		return inv, false
	}
	out := inv.clone()
	takeBackward(out, kind, count)
	return out, true
}

// takeBackward снимает до count единиц с конца, возвращает недостачу
func takeBackward(inv Inventory, kind ItemKind, count int) int {
	remaining := count
	for i := len(inv) - 1; i >= 0 && remaining > 0; i-- {
		s := inv[i]
		if s == nil || s.Kind != kind {
			continue
		}
		if s.Count > remaining {
			next := *s
			next.Count -= remaining
			inv[i] = &next
			remaining = 0
		} else {
			remaining -= s.Count
			inv[i] = nil
		}
	}
	return remaining
}

// TakeFromSlot забирает до count единиц из конкретного слота
func (l Ledger) TakeFromSlot(inv Inventory, slot, count int) (Inventory, int) {
	if slot < 0 || slot >= len(inv) || inv[slot] == nil || count <= 0 {
		return inv, 0
	}
	out := inv.clone()
	s := out[slot]
	if s.Count <= count {
		out[slot] = nil
		return out, s.Count
	}
	next := *s
	next.Count -= count
	out[slot] = &next
	return out, count
}

// mergeIngredients складывает строки с одним и тем же предметом.
// Порядок первых вхождений сохраняется.
func mergeIngredients(reqs []Ingredient) []Ingredient {
	out := make([]Ingredient, 0, len(reqs))
	pos := make(map[ItemKind]int, len(reqs))
	for _, r := range reqs {
		if i, ok := pos[r.Item]; ok {
			out[i].Count += r.Count
			continue
		}
		pos[r.Item] = len(out)
		out = append(out, r)
	}
	return out
}

// ConsumeAcrossTwo списывает требования сначала из primary, недостачу - из secondary.
// Суммарное наличие проверяется до любых изменений: либо списано все, либо ничего.
func (l Ledger) ConsumeAcrossTwo(primary, secondary Inventory, reqs []Ingredient) (Inventory, Inventory, bool) {
	reqs = mergeIngredients(reqs)
	for _, r := range reqs {
		if primary.Count(r.Item)+secondary.Count(r.Item) < r.Count {
			return primary, secondary, false
		}
	}

	p := primary.clone()
	s := secondary.clone()
	for _, r := range reqs {
		if short := takeBackward(p, r.Item, r.Count); short > 0 {
			takeBackward(s, r.Item, short)
		}
	}
	return p, s, true
}

// DecreaseDurability изнашивает инструмент в слоте на единицу.
// При нуле слот очищается, broken = true.
func (l Ledger) DecreaseDurability(inv Inventory, slot int) (out Inventory, broken bool) {
	if slot < 0 || slot >= len(inv) {
		return inv, false
	}
	s := inv[slot]
	if s == nil || s.MaxDurability == 0 {
		return inv, false
	}
	out = inv.clone()
	if s.Durability-1 <= 0 {
		out[slot] = nil
		return out, true
	}
	next := *s
	next.Durability--
	out[slot] = &next
	return out, false
}

// Restore выставляет прочность инструмента в слоте
func (l Ledger) Restore(inv Inventory, slot, durability int) Inventory {
	if slot < 0 || slot >= len(inv) || inv[slot] == nil {
		return inv
	}
	out := inv.clone()
	next := *out[slot]
	next.Durability = durability
	if durability > next.MaxDurability {
		next.MaxDurability = durability
	}
	out[slot] = &next
	return out
}
