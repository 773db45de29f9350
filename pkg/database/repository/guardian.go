package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/latoulicious/ailie/pkg/database/models"
	"gorm.io/gorm"
)

// Session performs guardian and guild operations on one connection
type Session struct {
	db *gorm.DB
}

// newSession starts every query chain from a clean statement bound to conn
func newSession(conn *gorm.DB) *Session {
	return &Session{db: conn.Session(&gorm.Session{})}
}

// GuardianInfo is the joined guardian/guild projection used by profiles
type GuardianInfo struct {
	Username         *string
	GuildName        *string
	GuardianPosition *string
	Gems             int64
}

// IsInitialized reports whether a guardian row exists
func (s *Session) IsInitialized(guardianID string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Guardian{}).
		Where("guardian_id = ?", guardianID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check guardian %s: %w", guardianID, err)
	}
	return count > 0, nil
}

// InitializeUser inserts a guardian with default values and reports whether a
// new row was created. The primary key decides, so concurrent calls for the
// same id create one row and only one caller sees true. A duplicate is read
// from the error rather than the affected row count, which MySQL reports as 1
// for a matched row when clientFoundRows is on.
func (s *Session) InitializeUser(guardianID string) (bool, error) {
	err := s.db.Create(&models.Guardian{GuardianID: guardianID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to initialize guardian %s: %w", guardianID, err)
	}
	return true, nil
}

// GuardianInfo returns username, guild name, position and gems for a guardian
func (s *Session) GuardianInfo(guardianID string) (GuardianInfo, error) {
	var info GuardianInfo
	err := s.db.Table("guardians").
		Select("guardians.username, guilds.guild_name, guardians.guardian_position, guardians.gems").
		Joins("LEFT JOIN guilds ON guilds.guild_id = guardians.guild_id").
		Where("guardians.guardian_id = ?", guardianID).
		Take(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GuardianInfo{}, ErrGuardianNotFound
	}
	if err != nil {
		return GuardianInfo{}, fmt.Errorf("failed to load guardian %s: %w", guardianID, err)
	}
	return info, nil
}

// GuildIDOfMember returns the guild id of a guardian, nil when guildless
func (s *Session) GuildIDOfMember(guardianID string) (*string, error) {
	var guardian models.Guardian
	err := s.db.Select("guild_id").
		Where("guardian_id = ?", guardianID).
		Take(&guardian).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGuardianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load guild of guardian %s: %w", guardianID, err)
	}
	return guardian.GuildID, nil
}

// HeroInventory returns the distinct hero names a guardian owns, sorted
func (s *Session) HeroInventory(guardianID string) ([]string, error) {
	names := []string{}
	if err := s.db.Model(&models.GuardianHero{}).
		Where("guardian_id = ?", guardianID).
		Distinct().
		Order("hero_name").
		Pluck("hero_name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to load heroes of guardian %s: %w", guardianID, err)
	}
	return names, nil
}

// EquipInventory returns the distinct equipment names a guardian owns, sorted
func (s *Session) EquipInventory(guardianID string) ([]string, error) {
	names := []string{}
	if err := s.db.Model(&models.GuardianEquipment{}).
		Where("guardian_id = ?", guardianID).
		Distinct().
		Order("equipment_name").
		Pluck("equipment_name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to load equipment of guardian %s: %w", guardianID, err)
	}
	return names, nil
}

// IsGuildless reports whether a guardian has no guild. Unknown guardians are guildless.
func (s *Session) IsGuildless(guardianID string) (bool, error) {
	guildID, err := s.GuildIDOfMember(guardianID)
	if errors.Is(err, ErrGuardianNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return guildID == nil, nil
}

// GuildExists reports whether a guild row exists
func (s *Session) GuildExists(guildID string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Guild{}).
		Where("guild_id = ?", guildID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check guild %s: %w", guildID, err)
	}
	return count > 0, nil
}

// CreateGuild inserts a guild and makes guardianID its first member with the
// given position. Both writes commit together or not at all.
func (s *Session) CreateGuild(guardianID, guardianPosition, guildID, guildName string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txSession := &Session{db: tx}

		exists, err := txSession.GuildExists(guildID)
		if err != nil {
			return err
		}
		if exists {
			return ErrGuildExists
		}

		guild := &models.Guild{GuildID: guildID, GuildName: guildName}
		if err := tx.Create(guild).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrGuildExists
			}
			return fmt.Errorf("failed to create guild %s: %w", guildID, err)
		}

		return txSession.JoinGuild(guardianID, guardianPosition, guildID)
	})
}

// JoinGuild sets the guild and position of a guardian. The guild must exist.
func (s *Session) JoinGuild(guardianID, guardianPosition, guildID string) error {
	if strings.TrimSpace(guardianPosition) == "" {
		return ErrPositionRequired
	}

	exists, err := s.GuildExists(guildID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrGuildNotFound
	}

	result := s.db.Model(&models.Guardian{}).
		Where("guardian_id = ?", guardianID).
		Updates(map[string]interface{}{
			"guild_id":          guildID,
			"guardian_position": guardianPosition,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ErrGuildNotFound
		}
		return fmt.Errorf("failed to join guild %s: %w", guildID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGuardianNotFound
	}
	return nil
}

// SetUsername overwrites the display name of a guardian
func (s *Session) SetUsername(guardianID, username string) error {
	result := s.db.Model(&models.Guardian{}).
		Where("guardian_id = ?", guardianID).
		Update("username", username)
	if result.Error != nil {
		return fmt.Errorf("failed to set username of guardian %s: %w", guardianID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGuardianNotFound
	}
	return nil
}
