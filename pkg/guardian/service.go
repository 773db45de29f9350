package guardian

import (
	"context"
	"errors"
	"strings"

	"github.com/latoulicious/ailie/pkg/database/repository"
	"github.com/latoulicious/ailie/pkg/logging"
)

// Guild positions assigned by the guild commands
const (
	PositionGuildMaster = "Guild Master"
	PositionMember      = "Member"
)

// SessionRunner runs a unit of work on one scoped store session
type SessionRunner interface {
	WithSession(ctx context.Context, fn func(*repository.Session) error) error
}

// Service validates guardian preconditions and assembles read views
type Service struct {
	store  SessionRunner
	logger logging.Logger
}

// NewService creates a new guardian service
func NewService(store SessionRunner, logger logging.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Profile returns the profile of target, or of actor when target is nil
func (s *Service) Profile(ctx context.Context, actor Identity, target *Identity) (*Profile, error) {
	var profile *Profile
	err := s.store.WithSession(ctx, func(session *repository.Session) error {
		subject, err := s.resolveSubject(session, actor, target)
		if err != nil {
			return err
		}

		info, err := session.GuardianInfo(subject.ID)
		if err != nil {
			return err
		}
		guildID, err := session.GuildIDOfMember(subject.ID)
		if err != nil {
			return err
		}
		heroes, err := session.HeroInventory(subject.ID)
		if err != nil {
			return err
		}
		equips, err := session.EquipInventory(subject.ID)
		if err != nil {
			return err
		}

		profile = &Profile{
			GuardianID:  subject.ID,
			DisplayName: subject.Name,
			AvatarURL:   subject.AvatarURL,
			Username:    valueOr(info.Username),
			Gems:        info.Gems,
			GemsDisplay: FormatGems(info.Gems),
			HeroCount:   len(heroes),
			EquipCount:  len(equips),
			GuildName:   valueOr(info.GuildName),
			GuildID:     valueOr(guildID),
			Position:    valueOr(info.GuardianPosition),
		}
		return nil
	})
	if err != nil {
		return nil, s.guidanceOr(err, actor)
	}
	return profile, nil
}

// Inventory returns the items of one category owned by target, or by actor
// when target is nil. An unknown category is answered before any store access.
func (s *Service) Inventory(ctx context.Context, actor Identity, category string, target *Identity) (*Inventory, error) {
	resolved, ok := ParseCategory(category)
	if !ok {
		return nil, s.guidanceOr(guidancef("There's only inventories for heroes and equipments, %s.", actor.Mention), actor)
	}

	var inventory *Inventory
	err := s.store.WithSession(ctx, func(session *repository.Session) error {
		subject, err := s.resolveSubject(session, actor, target)
		if err != nil {
			return err
		}

		var items []string
		switch resolved {
		case CategoryHero:
			items, err = session.HeroInventory(subject.ID)
		case CategoryEquip:
			items, err = session.EquipInventory(subject.ID)
		}
		if err != nil {
			return err
		}

		inventory = &Inventory{
			GuardianID:  subject.ID,
			DisplayName: subject.Name,
			AvatarURL:   subject.AvatarURL,
			Category:    resolved,
			Header:      resolved.Header(len(items)),
			Items:       items,
		}
		return nil
	})
	if err != nil {
		return nil, s.guidanceOr(err, actor)
	}
	return inventory, nil
}

// SetUsername overwrites the display name of actor
func (s *Service) SetUsername(ctx context.Context, actor Identity, username string) (*Notice, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, s.guidanceOr(guidancef("Tell me the username you want, %s.", actor.Mention), actor)
	}

	err := s.store.WithSession(ctx, func(session *repository.Session) error {
		if err := requireInitialized(session, actor); err != nil {
			return err
		}
		return session.SetUsername(actor.ID, username)
	})
	if err != nil {
		return nil, s.guidanceOr(err, actor)
	}

	s.logger.Info("Username updated", map[string]interface{}{
		"user_id":  actor.ID,
		"username": username,
	})
	return &Notice{Message: "Your username is now, " + username + ". Enjoy, " + actor.Mention + "."}, nil
}

// Initialize registers actor. Registering twice is reported, not failed.
func (s *Service) Initialize(ctx context.Context, actor Identity) (*Notice, error) {
	var created bool
	err := s.store.WithSession(ctx, func(session *repository.Session) error {
		var err error
		created, err = session.InitializeUser(actor.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !created {
		return &Notice{
			Message: "You are already initialized, " + actor.Mention + ". No need to initialize for the second time. Have fun!",
		}, nil
	}

	s.logger.Info("Guardian initialized", map[string]interface{}{"user_id": actor.ID})
	return &Notice{
		Message: "You can now use the other commands, " + actor.Mention + ". Have fun!",
		Created: true,
	}, nil
}

// CreateGuild creates a guild with actor as its Guild Master
func (s *Service) CreateGuild(ctx context.Context, actor Identity, guildID, guildName string) (*Notice, error) {
	guildID = strings.TrimSpace(guildID)
	guildName = strings.TrimSpace(guildName)
	if guildID == "" || guildName == "" {
		return nil, s.guidanceOr(guidancef("Give the guild an ID and a name, %s.", actor.Mention), actor)
	}

	err := s.store.WithSession(ctx, func(session *repository.Session) error {
		if err := requireGuildless(session, actor); err != nil {
			return err
		}

		err := session.CreateGuild(actor.ID, PositionGuildMaster, guildID, guildName)
		if errors.Is(err, repository.ErrGuildExists) {
			return guidancef("Guild ID `%s` is already taken, %s.", guildID, actor.Mention)
		}
		return err
	})
	if err != nil {
		return nil, s.guidanceOr(err, actor)
	}

	s.logger.Info("Guild created", map[string]interface{}{
		"user_id":    actor.ID,
		"game_guild": guildID,
	})
	return &Notice{
		Message: "Guild **" + guildName + "** (`" + guildID + "`) is created. You are its " + PositionGuildMaster + ", " + actor.Mention + ".",
		Created: true,
	}, nil
}

// JoinGuild makes actor a Member of an existing guild
func (s *Service) JoinGuild(ctx context.Context, actor Identity, guildID string) (*Notice, error) {
	guildID = strings.TrimSpace(guildID)
	if guildID == "" {
		return nil, s.guidanceOr(guidancef("Tell me the ID of the guild to join, %s.", actor.Mention), actor)
	}

	var guildName string
	err := s.store.WithSession(ctx, func(session *repository.Session) error {
		if err := requireGuildless(session, actor); err != nil {
			return err
		}

		err := session.JoinGuild(actor.ID, PositionMember, guildID)
		if errors.Is(err, repository.ErrGuildNotFound) {
			return guidancef("There's no guild with ID `%s`, %s.", guildID, actor.Mention)
		}
		if err != nil {
			return err
		}

		info, err := session.GuardianInfo(actor.ID)
		if err != nil {
			return err
		}
		guildName = valueOr(info.GuildName)
		return nil
	})
	if err != nil {
		return nil, s.guidanceOr(err, actor)
	}

	s.logger.Info("Guild joined", map[string]interface{}{
		"user_id":    actor.ID,
		"game_guild": guildID,
	})
	return &Notice{Message: "You joined **" + guildName + "**, " + actor.Mention + "."}, nil
}

// resolveSubject checks that actor, and target when given, are initialized
// and returns whose data the command should show
func (s *Service) resolveSubject(session *repository.Session, actor Identity, target *Identity) (Identity, error) {
	if err := requireInitialized(session, actor); err != nil {
		return Identity{}, err
	}
	if target == nil {
		return actor, nil
	}

	initialized, err := session.IsInitialized(target.ID)
	if err != nil {
		return Identity{}, err
	}
	if !initialized {
		return Identity{}, notInitializedTarget(*target)
	}
	return *target, nil
}

func requireInitialized(session *repository.Session, actor Identity) error {
	initialized, err := session.IsInitialized(actor.ID)
	if err != nil {
		return err
	}
	if !initialized {
		return notInitializedActor()
	}
	return nil
}

func requireGuildless(session *repository.Session, actor Identity) error {
	if err := requireInitialized(session, actor); err != nil {
		return err
	}
	guildless, err := session.IsGuildless(actor.ID)
	if err != nil {
		return err
	}
	if !guildless {
		return guidancef("You are already in a guild, %s.", actor.Mention)
	}
	return nil
}

// guidanceOr logs guidance at info level and returns err unchanged
func (s *Service) guidanceOr(err error, actor Identity) error {
	if guidance, ok := AsGuidance(err); ok {
		s.logger.Info("Command precondition not met", map[string]interface{}{
			"user_id":  actor.ID,
			"guidance": guidance.Message,
		})
	}
	return err
}
