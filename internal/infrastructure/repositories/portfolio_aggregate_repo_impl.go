package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/infrastructure/models"
	"lancerdesk.backend/pkg/utils"
)

// PortfolioAggregateRepository persists the portfolio aggregate across its
// ten flat tables. Reads fan out concurrently; writes reconcile each child
// collection against the stored id set and run inside the caller's
// transaction when one is in the context (see UnitOfWork).
type PortfolioAggregateRepository struct {
	db *gorm.DB
}

func NewPortfolioAggregateRepository(db *gorm.DB) *PortfolioAggregateRepository {
	return &PortfolioAggregateRepository{db: db}
}

const childOrder = "created_at ASC, id ASC"

// FetchAggregate loads the full aggregate. A missing root returns
// ErrNotFound without touching any child table; any child fetch error aborts
// the whole read, never a partial aggregate.
func (r *PortfolioAggregateRepository) FetchAggregate(ctx context.Context, id uuid.UUID) (*entities.PortfolioAggregate, error) {
	var root models.Portfolio
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&root).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, fmt.Errorf("fetch portfolio: %w", err)
	}

	agg := &entities.PortfolioAggregate{Portfolio: *toPortfolioEntity(&root)}

	// Contact is zero-or-one; absence is not an error, it yields a default
	// contact with an empty email.
	var contacts []models.PortfolioContact
	if err := r.db.WithContext(ctx).Where("portfolio_id = ?", id).Limit(1).Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("fetch contact: %w", err)
	}
	if len(contacts) > 0 {
		agg.Contact = toContactEntity(&contacts[0])
	} else {
		agg.Contact = &entities.PortfolioContact{Email: ""}
	}

	// The flat child collections are independent; fetch them concurrently.
	g, gctx := errgroup.WithContext(ctx)

	var memberRows []models.PortfolioTeamMember
	g.Go(func() error {
		var rows []models.PortfolioProject
		if err := r.db.WithContext(gctx).Where("portfolio_id = ?", id).Order(childOrder).Find(&rows).Error; err != nil {
			return fmt.Errorf("fetch projects: %w", err)
		}
		projects := make([]entities.PortfolioProject, 0, len(rows))
		for i := range rows {
			p, err := toProjectEntity(&rows[i])
			if err != nil {
				return fmt.Errorf("decode project: %w", err)
			}
			projects = append(projects, *p)
		}
		agg.Projects = projects
		return nil
	})
	g.Go(func() error {
		var rows []models.PortfolioExperience
		if err := r.db.WithContext(gctx).Where("portfolio_id = ?", id).Order(childOrder).Find(&rows).Error; err != nil {
			return fmt.Errorf("fetch experiences: %w", err)
		}
		experiences := make([]entities.PortfolioExperience, 0, len(rows))
		for i := range rows {
			e, err := toExperienceEntity(&rows[i])
			if err != nil {
				return fmt.Errorf("decode experience: %w", err)
			}
			experiences = append(experiences, *e)
		}
		agg.Experiences = experiences
		return nil
	})
	g.Go(func() error {
		var rows []models.PortfolioSkill
		if err := r.db.WithContext(gctx).Where("portfolio_id = ?", id).Order(childOrder).Find(&rows).Error; err != nil {
			return fmt.Errorf("fetch skills: %w", err)
		}
		skills := make([]entities.PortfolioSkill, 0, len(rows))
		for i := range rows {
			skills = append(skills, *toSkillEntity(&rows[i]))
		}
		agg.Skills = skills
		return nil
	})
	g.Go(func() error {
		var rows []models.PortfolioService
		if err := r.db.WithContext(gctx).Where("portfolio_id = ?", id).Order(childOrder).Find(&rows).Error; err != nil {
			return fmt.Errorf("fetch services: %w", err)
		}
		services := make([]entities.PortfolioService, 0, len(rows))
		for i := range rows {
			services = append(services, *toServiceEntity(&rows[i]))
		}
		agg.Services = services
		return nil
	})
	g.Go(func() error {
		var rows []models.PortfolioTestimonial
		if err := r.db.WithContext(gctx).Where("portfolio_id = ?", id).Order(childOrder).Find(&rows).Error; err != nil {
			return fmt.Errorf("fetch testimonials: %w", err)
		}
		testimonials := make([]entities.PortfolioTestimonial, 0, len(rows))
		for i := range rows {
			testimonials = append(testimonials, *toTestimonialEntity(&rows[i]))
		}
		agg.Testimonials = testimonials
		return nil
	})
	g.Go(func() error {
		if err := r.db.WithContext(gctx).Where("portfolio_id = ?", id).Order(childOrder).Find(&memberRows).Error; err != nil {
			return fmt.Errorf("fetch team members: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var rows []models.PortfolioSocialLink
		if err := r.db.WithContext(gctx).Where("portfolio_id = ?", id).Order(childOrder).Find(&rows).Error; err != nil {
			return fmt.Errorf("fetch social links: %w", err)
		}
		links := make([]entities.SocialLink, 0, len(rows))
		for i := range rows {
			links = append(links, entities.SocialLink{
				ID:       rows[i].ID,
				Platform: rows[i].Platform,
				URL:      rows[i].URL,
				Icon:     rows[i].Icon,
			})
		}
		agg.SocialLinks = links
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Member social links depend on the member rows; second fan-out, one
	// query per member, each scoped to that member's id only.
	members := make([]entities.PortfolioTeamMember, len(memberRows))
	mg, mctx := errgroup.WithContext(ctx)
	for i := range memberRows {
		i := i // per-iteration copy; required while go.mod targets Go 1.21
		mg.Go(func() error {
			var rows []models.TeamMemberSocialLink
			if err := r.db.WithContext(mctx).Where("team_member_id = ?", memberRows[i].ID).Order(childOrder).Find(&rows).Error; err != nil {
				return fmt.Errorf("fetch member links: %w", err)
			}
			links := make([]entities.SocialLink, 0, len(rows))
			for j := range rows {
				links = append(links, entities.SocialLink{
					ID:       rows[j].ID,
					Platform: rows[j].Platform,
					URL:      rows[j].URL,
					Icon:     rows[j].Icon,
				})
			}
			members[i] = entities.PortfolioTeamMember{
				ID:          memberRows[i].ID,
				Name:        memberRows[i].Name,
				Role:        memberRows[i].Role,
				Bio:         memberRows[i].Bio,
				Email:       memberRows[i].Email,
				AvatarURL:   memberRows[i].AvatarURL,
				SocialLinks: links,
			}
			return nil
		})
	}
	if err := mg.Wait(); err != nil {
		return nil, err
	}
	agg.TeamMembers = members

	return agg, nil
}

// SaveAggregate upserts the root and reconciles every child collection.
// The incoming id set is authoritative per collection: stored ids missing
// from a non-empty incoming collection are deleted, everything incoming is
// upserted keyed by its caller-supplied id. An empty incoming collection is
// skipped entirely and never clears stored rows.
func (r *PortfolioAggregateRepository) SaveAggregate(ctx context.Context, agg *entities.PortfolioAggregate) (uuid.UUID, error) {
	if strings.TrimSpace(agg.Title) == "" {
		return uuid.Nil, domainerrors.ErrInvalidInput
	}

	db := GetDB(ctx, r.db).WithContext(ctx)
	now := time.Now()

	if agg.ID == uuid.Nil {
		agg.ID = utils.GenerateUUIDv7()
		agg.CreatedAt = now
	}
	agg.UpdatedAt = now

	root := toPortfolioModel(&agg.Portfolio)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "name", "title", "subtitle", "bio", "theme", "layout", "updated_at"}),
	}).Create(root).Error; err != nil {
		return uuid.Nil, fmt.Errorf("upsert portfolio: %w", err)
	}

	if agg.Contact != nil {
		if agg.Contact.ID == uuid.Nil {
			agg.Contact.ID = utils.GenerateUUIDv7()
		}
		contact := toContactModel(agg.Contact, agg.ID, now)
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"portfolio_id", "email", "phone", "location", "linkedin_url", "github_url", "website_url", "updated_at"}),
		}).Create(contact).Error; err != nil {
			return uuid.Nil, fmt.Errorf("upsert contact: %w", err)
		}
	}

	if err := r.reconcileProjects(db, agg.ID, agg.Projects, now); err != nil {
		return uuid.Nil, fmt.Errorf("reconcile projects: %w", err)
	}
	if err := r.reconcileExperiences(db, agg.ID, agg.Experiences, now); err != nil {
		return uuid.Nil, fmt.Errorf("reconcile experiences: %w", err)
	}
	if err := r.reconcileSkills(db, agg.ID, agg.Skills, now); err != nil {
		return uuid.Nil, fmt.Errorf("reconcile skills: %w", err)
	}
	if err := r.reconcileServices(db, agg.ID, agg.Services, now); err != nil {
		return uuid.Nil, fmt.Errorf("reconcile services: %w", err)
	}
	if err := r.reconcileTestimonials(db, agg.ID, agg.Testimonials, now); err != nil {
		return uuid.Nil, fmt.Errorf("reconcile testimonials: %w", err)
	}
	if err := r.reconcileTeamMembers(db, agg.ID, agg.TeamMembers, now); err != nil {
		return uuid.Nil, fmt.Errorf("reconcile team members: %w", err)
	}
	if err := r.reconcileSocialLinks(db, agg.ID, agg.SocialLinks, now); err != nil {
		return uuid.Nil, fmt.Errorf("reconcile social links: %w", err)
	}

	return agg.ID, nil
}

// DeleteAggregate deletes the root row only. Child rows are removed by the
// schema's ON DELETE CASCADE foreign keys; this repository issues no child
// deletes of its own.
func (r *PortfolioAggregateRepository) DeleteAggregate(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Portfolio{})
	if result.Error != nil {
		return fmt.Errorf("delete portfolio: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PortfolioAggregateRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Portfolio, error) {
	var rows []models.Portfolio
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Portfolio, 0, len(rows))
	for i := range rows {
		items = append(items, toPortfolioEntity(&rows[i]))
	}
	return items, nil
}

// diffIDs returns the stored ids missing from the incoming set
func diffIDs(existing []uuid.UUID, incoming map[uuid.UUID]struct{}) []uuid.UUID {
	var toDelete []uuid.UUID
	for _, id := range existing {
		if _, ok := incoming[id]; !ok {
			toDelete = append(toDelete, id)
		}
	}
	return toDelete
}

func incomingIDSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (r *PortfolioAggregateRepository) reconcileProjects(db *gorm.DB, portfolioID uuid.UUID, items []entities.PortfolioProject, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&models.PortfolioProject{}).Where("portfolio_id = ?", portfolioID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	rows := make([]models.PortfolioProject, 0, len(items))
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = utils.GenerateUUIDv7()
		}
		row, err := toProjectModel(&items[i], portfolioID, now)
		if err != nil {
			return err
		}
		ids = append(ids, items[i].ID)
		rows = append(rows, *row)
	}

	if toDelete := diffIDs(existing, incomingIDSet(ids)); len(toDelete) > 0 {
		if err := db.Where("id IN ?", toDelete).Delete(&models.PortfolioProject{}).Error; err != nil {
			return err
		}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"portfolio_id", "title", "description", "technologies", "image_url", "link_url", "is_featured", "updated_at"}),
	}).Create(&rows).Error
}

func (r *PortfolioAggregateRepository) reconcileExperiences(db *gorm.DB, portfolioID uuid.UUID, items []entities.PortfolioExperience, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&models.PortfolioExperience{}).Where("portfolio_id = ?", portfolioID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	rows := make([]models.PortfolioExperience, 0, len(items))
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = utils.GenerateUUIDv7()
		}
		row, err := toExperienceModel(&items[i], portfolioID, now)
		if err != nil {
			return err
		}
		ids = append(ids, items[i].ID)
		rows = append(rows, *row)
	}

	if toDelete := diffIDs(existing, incomingIDSet(ids)); len(toDelete) > 0 {
		if err := db.Where("id IN ?", toDelete).Delete(&models.PortfolioExperience{}).Error; err != nil {
			return err
		}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"portfolio_id", "company", "role", "duration", "description", "achievements", "updated_at"}),
	}).Create(&rows).Error
}

func (r *PortfolioAggregateRepository) reconcileSkills(db *gorm.DB, portfolioID uuid.UUID, items []entities.PortfolioSkill, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&models.PortfolioSkill{}).Where("portfolio_id = ?", portfolioID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	rows := make([]models.PortfolioSkill, 0, len(items))
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = utils.GenerateUUIDv7()
		}
		ids = append(ids, items[i].ID)
		rows = append(rows, models.PortfolioSkill{
			ID:          items[i].ID,
			PortfolioID: portfolioID,
			Name:        items[i].Name,
			Level:       items[i].Level,
			Category:    items[i].Category,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if toDelete := diffIDs(existing, incomingIDSet(ids)); len(toDelete) > 0 {
		if err := db.Where("id IN ?", toDelete).Delete(&models.PortfolioSkill{}).Error; err != nil {
			return err
		}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"portfolio_id", "name", "level", "category", "updated_at"}),
	}).Create(&rows).Error
}

func (r *PortfolioAggregateRepository) reconcileServices(db *gorm.DB, portfolioID uuid.UUID, items []entities.PortfolioService, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&models.PortfolioService{}).Where("portfolio_id = ?", portfolioID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	rows := make([]models.PortfolioService, 0, len(items))
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = utils.GenerateUUIDv7()
		}
		ids = append(ids, items[i].ID)
		rows = append(rows, models.PortfolioService{
			ID:          items[i].ID,
			PortfolioID: portfolioID,
			Title:       items[i].Title,
			Description: items[i].Description,
			Price:       items[i].Price,
			Icon:        items[i].Icon,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if toDelete := diffIDs(existing, incomingIDSet(ids)); len(toDelete) > 0 {
		if err := db.Where("id IN ?", toDelete).Delete(&models.PortfolioService{}).Error; err != nil {
			return err
		}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"portfolio_id", "title", "description", "price", "icon", "updated_at"}),
	}).Create(&rows).Error
}

func (r *PortfolioAggregateRepository) reconcileTestimonials(db *gorm.DB, portfolioID uuid.UUID, items []entities.PortfolioTestimonial, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&models.PortfolioTestimonial{}).Where("portfolio_id = ?", portfolioID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	rows := make([]models.PortfolioTestimonial, 0, len(items))
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = utils.GenerateUUIDv7()
		}
		ids = append(ids, items[i].ID)
		rows = append(rows, models.PortfolioTestimonial{
			ID:          items[i].ID,
			PortfolioID: portfolioID,
			Author:      items[i].Author,
			Company:     items[i].Company,
			Content:     items[i].Content,
			AvatarURL:   items[i].AvatarURL,
			Rating:      items[i].Rating,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if toDelete := diffIDs(existing, incomingIDSet(ids)); len(toDelete) > 0 {
		if err := db.Where("id IN ?", toDelete).Delete(&models.PortfolioTestimonial{}).Error; err != nil {
			return err
		}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"portfolio_id", "author", "company", "content", "avatar_url", "rating", "updated_at"}),
	}).Create(&rows).Error
}

// reconcileTeamMembers is the two-level case: members reconcile against the
// portfolio, then each member's social links reconcile against that member's
// id only, so links never cross member boundaries.
func (r *PortfolioAggregateRepository) reconcileTeamMembers(db *gorm.DB, portfolioID uuid.UUID, items []entities.PortfolioTeamMember, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&models.PortfolioTeamMember{}).Where("portfolio_id = ?", portfolioID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	rows := make([]models.PortfolioTeamMember, 0, len(items))
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = utils.GenerateUUIDv7()
		}
		ids = append(ids, items[i].ID)
		rows = append(rows, models.PortfolioTeamMember{
			ID:          items[i].ID,
			PortfolioID: portfolioID,
			Name:        items[i].Name,
			Role:        items[i].Role,
			Bio:         items[i].Bio,
			Email:       items[i].Email,
			AvatarURL:   items[i].AvatarURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if toDelete := diffIDs(existing, incomingIDSet(ids)); len(toDelete) > 0 {
		if err := db.Where("id IN ?", toDelete).Delete(&models.PortfolioTeamMember{}).Error; err != nil {
			return err
		}
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"portfolio_id", "name", "role", "bio", "email", "avatar_url", "updated_at"}),
	}).Create(&rows).Error; err != nil {
		return err
	}

	for i := range items {
		if err := r.reconcileMemberLinks(db, items[i].ID, items[i].SocialLinks, now); err != nil {
			return fmt.Errorf("member links: %w", err)
		}
	}
	return nil
}

func (r *PortfolioAggregateRepository) reconcileMemberLinks(db *gorm.DB, memberID uuid.UUID, items []entities.SocialLink, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&models.TeamMemberSocialLink{}).Where("team_member_id = ?", memberID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	rows := make([]models.TeamMemberSocialLink, 0, len(items))
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = utils.GenerateUUIDv7()
		}
		ids = append(ids, items[i].ID)
		rows = append(rows, models.TeamMemberSocialLink{
			ID:           items[i].ID,
			TeamMemberID: memberID,
			Platform:     items[i].Platform,
			URL:          items[i].URL,
			Icon:         items[i].Icon,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if toDelete := diffIDs(existing, incomingIDSet(ids)); len(toDelete) > 0 {
		if err := db.Where("id IN ?", toDelete).Delete(&models.TeamMemberSocialLink{}).Error; err != nil {
			return err
		}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"team_member_id", "platform", "url", "icon", "updated_at"}),
	}).Create(&rows).Error
}

func (r *PortfolioAggregateRepository) reconcileSocialLinks(db *gorm.DB, portfolioID uuid.UUID, items []entities.SocialLink, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	var existing []uuid.UUID
	if err := db.Model(&models.PortfolioSocialLink{}).Where("portfolio_id = ?", portfolioID).Pluck("id", &existing).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	rows := make([]models.PortfolioSocialLink, 0, len(items))
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = utils.GenerateUUIDv7()
		}
		ids = append(ids, items[i].ID)
		rows = append(rows, models.PortfolioSocialLink{
			ID:          items[i].ID,
			PortfolioID: portfolioID,
			Platform:    items[i].Platform,
			URL:         items[i].URL,
			Icon:        items[i].Icon,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if toDelete := diffIDs(existing, incomingIDSet(ids)); len(toDelete) > 0 {
		if err := db.Where("id IN ?", toDelete).Delete(&models.PortfolioSocialLink{}).Error; err != nil {
			return err
		}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"portfolio_id", "platform", "url", "icon", "updated_at"}),
	}).Create(&rows).Error
}

func marshalStringList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalStringList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func toPortfolioEntity(m *models.Portfolio) *entities.Portfolio {
	return &entities.Portfolio{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Title:     m.Title,
		Subtitle:  m.Subtitle,
		Bio:       m.Bio,
		Theme:     m.Theme,
		Layout:    m.Layout,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPortfolioModel(e *entities.Portfolio) *models.Portfolio {
	return &models.Portfolio{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		Title:     e.Title,
		Subtitle:  e.Subtitle,
		Bio:       e.Bio,
		Theme:     e.Theme,
		Layout:    e.Layout,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toContactEntity(m *models.PortfolioContact) *entities.PortfolioContact {
	c := &entities.PortfolioContact{
		ID:    m.ID,
		Email: m.Email,
	}
	if m.Phone != "" {
		c.Phone.SetValid(m.Phone)
	}
	if m.Location != "" {
		c.Location.SetValid(m.Location)
	}
	if m.LinkedInURL != "" {
		c.LinkedInURL.SetValid(m.LinkedInURL)
	}
	if m.GithubURL != "" {
		c.GithubURL.SetValid(m.GithubURL)
	}
	if m.WebsiteURL != "" {
		c.WebsiteURL.SetValid(m.WebsiteURL)
	}
	return c
}

func toContactModel(e *entities.PortfolioContact, portfolioID uuid.UUID, now time.Time) *models.PortfolioContact {
	return &models.PortfolioContact{
		ID:          e.ID,
		PortfolioID: portfolioID,
		Email:       e.Email,
		Phone:       e.Phone.String,
		Location:    e.Location.String,
		LinkedInURL: e.LinkedInURL.String,
		GithubURL:   e.GithubURL.String,
		WebsiteURL:  e.WebsiteURL.String,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func toProjectEntity(m *models.PortfolioProject) (*entities.PortfolioProject, error) {
	technologies, err := unmarshalStringList(m.Technologies)
	if err != nil {
		return nil, err
	}
	return &entities.PortfolioProject{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Technologies: technologies,
		ImageURL:     m.ImageURL,
		LinkURL:      m.LinkURL,
		Featured:     m.IsFeatured,
	}, nil
}

func toProjectModel(e *entities.PortfolioProject, portfolioID uuid.UUID, now time.Time) (*models.PortfolioProject, error) {
	technologies, err := marshalStringList(e.Technologies)
	if err != nil {
		return nil, err
	}
	return &models.PortfolioProject{
		ID:           e.ID,
		PortfolioID:  portfolioID,
		Title:        e.Title,
		Description:  e.Description,
		Technologies: technologies,
		ImageURL:     e.ImageURL,
		LinkURL:      e.LinkURL,
		IsFeatured:   e.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func toExperienceEntity(m *models.PortfolioExperience) (*entities.PortfolioExperience, error) {
	achievements, err := unmarshalStringList(m.Achievements)
	if err != nil {
		return nil, err
	}
	return &entities.PortfolioExperience{
		ID:           m.ID,
		Company:      m.Company,
		Role:         m.Role,
		Duration:     m.Duration,
		Description:  m.Description,
		Achievements: achievements,
	}, nil
}

func toExperienceModel(e *entities.PortfolioExperience, portfolioID uuid.UUID, now time.Time) (*models.PortfolioExperience, error) {
	achievements, err := marshalStringList(e.Achievements)
	if err != nil {
		return nil, err
	}
	return &models.PortfolioExperience{
		ID:           e.ID,
		PortfolioID:  portfolioID,
		Company:      e.Company,
		Role:         e.Role,
		Duration:     e.Duration,
		Description:  e.Description,
		Achievements: achievements,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func toSkillEntity(m *models.PortfolioSkill) *entities.PortfolioSkill {
	return &entities.PortfolioSkill{
		ID:       m.ID,
		Name:     m.Name,
		Level:    m.Level,
		Category: m.Category,
	}
}

func toServiceEntity(m *models.PortfolioService) *entities.PortfolioService {
	return &entities.PortfolioService{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Icon:        m.Icon,
	}
}

func toTestimonialEntity(m *models.PortfolioTestimonial) *entities.PortfolioTestimonial {
	return &entities.PortfolioTestimonial{
		ID:        m.ID,
		Author:    m.Author,
		Company:   m.Company,
		Content:   m.Content,
		AvatarURL: m.AvatarURL,
		Rating:    m.Rating,
	}
}
