package models

type Category struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"size:120;uniqueIndex;not null" json:"name" validate:"required,max=120"`
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-" validate:"-"`
}

func (c *Category) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":   c.ID,
		"name": c.Name,
	}
}
