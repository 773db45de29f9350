package models

import "time"

// Guild represents a named group a guardian can belong to
type Guild struct {
	GuildID   string    `gorm:"primaryKey;size:64" json:"guild_id"` // caller supplied, never generated
	GuildName string    `gorm:"size:100;not null" json:"guild_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Members []Guardian `gorm:"foreignKey:GuildID;references:GuildID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// Guardian represents a registered Discord user
type Guardian struct {
	GuardianID       string    `gorm:"primaryKey;size:32" json:"guardian_id"`
	Username         *string   `gorm:"size:100" json:"username"`
	Gems             int64     `gorm:"not null;default:0;check:chk_guardians_gems,gems >= 0" json:"gems"`
	GuildID          *string   `gorm:"size:64;index" json:"guild_id"`
	GuardianPosition *string   `gorm:"size:50;check:chk_guardians_position,(guild_id IS NULL) = (guardian_position IS NULL)" json:"guardian_position"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Heroes     []GuardianHero      `gorm:"foreignKey:GuardianID;references:GuardianID;constraint:OnDelete:RESTRICT" json:"-"`
	Equipments []GuardianEquipment `gorm:"foreignKey:GuardianID;references:GuardianID;constraint:OnDelete:RESTRICT" json:"-"`
}

// GuardianHero records that a guardian owns a named hero
type GuardianHero struct {
	GuardianID string    `gorm:"primaryKey;size:32" json:"guardian_id"`
	HeroName   string    `gorm:"primaryKey;size:100" json:"hero_name"`
	ObtainedAt time.Time `gorm:"autoCreateTime" json:"obtained_at"`
}

// GuardianEquipment records that a guardian owns a named equipment piece
type GuardianEquipment struct {
	GuardianID    string    `gorm:"primaryKey;size:32" json:"guardian_id"`
	EquipmentName string    `gorm:"primaryKey;size:100" json:"equipment_name"`
	ObtainedAt    time.Time `gorm:"autoCreateTime" json:"obtained_at"`
}

// TableName returns the table name for Guild
func (Guild) TableName() string {
	return "guilds"
}

// TableName returns the table name for Guardian
func (Guardian) TableName() string {
	return "guardians"
}

// TableName returns the table name for GuardianHero
func (GuardianHero) TableName() string {
	return "guardian_heroes"
}

// TableName returns the table name for GuardianEquipment
func (GuardianEquipment) TableName() string {
	return "guardian_equipments"
}
