package service

import (
	"errors"
	"fmt"
	"strings"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/repository"
	"receiptor-bot/pkg/compliance"

	"github.com/sirupsen/logrus"
)

// UserDataCleaner removes everything a store keeps for one user.
type UserDataCleaner interface {
	DeleteByUserID(userID uint) error
}

type UserService struct {
	repo     repository.UserRepository
	cleaners []UserDataCleaner
	logger   *logrus.Logger
}

// NewUserService takes the stores whose rows are removed together with a user.
func NewUserService(repo repository.UserRepository, cleaners ...UserDataCleaner) *UserService {
	return &UserService{repo: repo, cleaners: cleaners, logger: newLogger()}
}

// SettingsUpdate carries the settings to change; nil fields are left untouched.
type SettingsUpdate struct {
	WorkingCountryCode   *string
	ResidenceCountryCode *string
	HomeworkingThreshold *int
	WorkingDays          []int
}

// CreateUser creates a new user with the client role
func (s *UserService) CreateUser(chatID int64, username, firstName, lastName string) (*models.User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, errors.New("first name cannot be empty")
	}

	exists, err := s.repo.Exists(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	user := &models.User{
		ChatID:    chatID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleClient,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetUser(chatID int64) (*models.User, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) UpdateUser(chatID int64, username, firstName, lastName string) (*models.User, error) {
	user, err := s.GetUser(chatID)
	if err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Settings returns the compliance settings of a user. Users without a
// profile get the defaults.
func (s *UserService) Settings(chatID int64) (models.Settings, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user.Settings(), nil
}

func (s *UserService) UpdateSettings(chatID int64, upd SettingsUpdate) (models.Settings, error) {
	user, err := s.GetUser(chatID)
	if err != nil {
		return models.Settings{}, err
	}

	if upd.WorkingCountryCode != nil {
		code, err := normalizeCountryCode(*upd.WorkingCountryCode)
		if err != nil {
			return models.Settings{}, err
		}
		user.WorkingCountryCode = code
	}

	if upd.ResidenceCountryCode != nil {
		code, err := normalizeCountryCode(*upd.ResidenceCountryCode)
		if err != nil {
			return models.Settings{}, err
		}
		user.ResidenceCountryCode = code
	}

	if upd.HomeworkingThreshold != nil {
		if *upd.HomeworkingThreshold < 0 {
			return models.Settings{}, ErrInvalidThreshold
		}
		threshold := *upd.HomeworkingThreshold
		user.HomeworkingThreshold = &threshold
	}

	if upd.WorkingDays != nil {
		set, err := compliance.ParseWeekdays(upd.WorkingDays)
		if err != nil {
			return models.Settings{}, fmt.Errorf("%w: %v", ErrInvalidWeekdays, err)
		}
		// an empty default regime would silently mean Monday to Friday
		if set.Len() == 0 {
			return models.Settings{}, ErrInvalidWeekdays
		}
		user.WorkingDays = set.Ints()
	}

	if err := s.repo.Update(user); err != nil {
		return models.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"chat_id": chatID,
		"country": user.WorkingCountryCode,
	}).Info("User settings updated")

	return user.Settings(), nil
}

// UpdateRole changes the role of a user (admins only)
func (s *UserService) UpdateRole(adminChatID, targetChatID int64, role models.Role) error {
	admin, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if admin == nil || !admin.IsAdmin() {
		return ErrAccessDenied
	}

	target, err := s.repo.GetByChatID(targetChatID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if target == nil {
		return ErrUserNotFound
	}

	return s.repo.UpdateRole(targetChatID, role)
}

func (s *UserService) FormatUserInfo(user *models.User) string {
	var lines []string

	lines = append(lines, "👤 Profile:")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("🆔 Chat ID: %d", user.ChatID))

	if user.Username != "" {
		lines = append(lines, fmt.Sprintf("📛 Username: @%s", user.Username))
	}

	lines = append(lines, fmt.Sprintf("👨‍💼 First name: %s", user.FirstName))

	if user.LastName != "" {
		lines = append(lines, fmt.Sprintf("👨‍💼 Last name: %s", user.LastName))
	}

	roleEmoji := "👤"
	if user.IsAdmin() {
		roleEmoji = "👑"
	}
	lines = append(lines, fmt.Sprintf("%s Role: %s", roleEmoji, user.Role))
	lines = append(lines, "")
	lines = append(lines, FormatSettings(user.Settings()))

	return strings.Join(lines, "\n")
}

// FormatSettings renders the compliance settings for the chat.
func FormatSettings(settings models.Settings) string {
	days, _ := compliance.ParseWeekdays(settings.WorkingDays)

	lines := []string{
		"⚙️ Settings:",
		fmt.Sprintf("🏢 Working country: %s", settings.WorkingCountryCode),
		fmt.Sprintf("🏠 Residence country: %s", settings.ResidenceCountryCode),
		fmt.Sprintf("📏 Home-working threshold: %d days", settings.HomeworkingThreshold),
		fmt.Sprintf("📅 Default working days: %s", days),
	}
	return strings.Join(lines, "\n")
}

// DeleteUser removes the user and all their schedules, holidays and receipts.
func (s *UserService) DeleteUser(chatID int64) error {
	user, err := s.GetUser(chatID)
	if err != nil {
		return err
	}

	for _, c := range s.cleaners {
		if err := c.DeleteByUserID(user.ID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	if err := s.repo.Delete(chatID); err != nil {
		return err
	}

	s.logger.WithField("chat_id", chatID).Info("User and data deleted")
	return nil
}

func (s *UserService) GetAllUsers() ([]*models.User, error) {
	return s.repo.GetAll()
}

func (s *UserService) GetAdmins() ([]*models.User, error) {
	return s.repo.GetAdmins()
}

// GetStats returns the number of users and admins
func (s *UserService) GetStats() (int, int, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return 0, 0, err
	}

	admins := 0
	for _, u := range users {
		if u.IsAdmin() {
			admins++
		}
	}
	return len(users), admins, nil
}

func (s *UserService) FormatAllUsers() (string, error) {
	users, err := s.GetAllUsers()
	if err != nil {
		return "", err
	}

	if len(users) == 0 {
		return "📭 No users yet.", nil
	}

	var lines []string
	lines = append(lines, "📋 All users:")
	lines = append(lines, "")

	admins := 0
	for i, user := range users {
		roleEmoji := "👤"
		if user.IsAdmin() {
			roleEmoji = "👑"
			admins++
		}

		userInfo := fmt.Sprintf("%d. %s ", i+1, roleEmoji)
		if user.FirstName != "" {
			userInfo += user.FirstName + " "
		}
		if user.LastName != "" {
			userInfo += user.LastName + " "
		}
		if user.Username != "" {
			userInfo += fmt.Sprintf("(@%s) ", user.Username)
		}
		userInfo += fmt.Sprintf("- ID: %d, %s", user.ChatID, user.Settings().WorkingCountryCode)
		lines = append(lines, userInfo)
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("📊 Total users: %d", len(users)))
	lines = append(lines, fmt.Sprintf("👑 Admins: %d", admins))

	return strings.Join(lines, "\n"), nil
}

func (s *UserService) IsAdmin(chatID int64) (bool, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return false, err
	}

	return user != nil && user.IsAdmin(), nil
}

// InitializeAdmin promotes or creates the administrator from the config
func (s *UserService) InitializeAdmin(adminChatID int64) error {
	if adminChatID == 0 {
		return nil
	}

	existing, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return err
	}

	if existing != nil {
		return s.repo.UpdateRole(adminChatID, models.Role(models.RoleAdmin))
	}

	return s.repo.Create(&models.User{
		ChatID:    adminChatID,
		Username:  "admin",
		FirstName: "Administrator",
		Role:      models.RoleAdmin,
	})
}

func normalizeCountryCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 {
		return "", ErrInvalidCountryCode
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCountryCode
		}
	}
	return code, nil
}
