package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p TilePayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("coordinates cannot be negative")
	}
	return nil
}

func (p SlotPayload) Validate() error {
	if p.Slot < -1 {
		return errors.New("slot must be -1 or a slot index")
	}
	return nil
}

func (p RecipePayload) Validate() error {
	if p.Recipe == "" {
		return errors.New("recipe is required")
	}
	return nil
}

func (p FuelPayload) Validate() error {
	if p.Item == "" {
		return errors.New("item is required")
	}
	return nil
}
