// store/stores.go
package store

import (
	"context"
	"io"

	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/services"
)

// Stores bundles one session's entity containers. Each store calls its API
// service and merges the response into its container; no other code mutates
// container state.
type Stores struct {
	Users         *UserStore
	Collaborators *CollaboratorStore
	Products      *ProductStore
	Categories    *CategoryStore
	Roles         *RoleStore
	Orders        *OrderStore
	Surveys       *SurveyStore
	Revenue       *RevenueStore
}

// NewStores wires a fresh set of containers against the API services.
func NewStores(api *services.APIClient) *Stores {
	return &Stores{
		Users:         &UserStore{c: NewContainer(func(u models.User) string { return u.ID }), api: services.NewUserService(api)},
		Collaborators: &CollaboratorStore{c: NewContainer(func(cl models.Collaborator) string { return cl.ID }), api: services.NewCollaboratorService(api)},
		Products:      &ProductStore{c: NewContainer(func(p models.Product) string { return p.ID }), api: services.NewProductService(api)},
		Categories:    &CategoryStore{c: NewContainer(func(cat models.Category) string { return cat.ID }), api: services.NewCategoryService(api)},
		Roles:         &RoleStore{c: NewContainer(func(r models.Role) string { return r.ID }), api: services.NewRoleService(api)},
		Orders:        &OrderStore{c: NewContainer(func(o models.Order) string { return o.ID }), api: services.NewOrderService(api)},
		Surveys:       &SurveyStore{c: NewContainer(func(s models.Survey) string { return s.ID }), api: services.NewSurveyService(api)},
		Revenue:       &RevenueStore{c: NewContainer(func(r models.RevenueDetail) string { return r.CollaboratorID }), api: services.NewRevenueService(api)},
	}
}

// UserStore mirrors /admin/users.
type UserStore struct {
	c   *Container[models.User]
	api *services.UserService
}

func (s *UserStore) State() State[models.User] { return s.c.Snapshot() }

func (s *UserStore) List(ctx context.Context, token string, pr models.PageRequest) error {
	gen := s.c.BeginFetch()
	page, err := s.api.List(ctx, token, pr)
	s.c.CompleteFetch(gen, page, err)
	return err
}

func (s *UserStore) Create(ctx context.Context, token string, req models.CreateUserRequest) (*models.User, error) {
	user, err := s.api.Create(ctx, token, req)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyCreate(*user)
	return user, nil
}

func (s *UserStore) Update(ctx context.Context, token, id string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.api.Update(ctx, token, id, req)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*user)
	return user, nil
}

func (s *UserStore) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		s.c.Fail(err)
		return err
	}
	s.c.ApplyDelete(id)
	return nil
}

func (s *UserStore) DeleteMany(ctx context.Context, token string, ids []string) error {
	if err := s.api.DeleteMany(ctx, token, ids); err != nil {
		s.c.Fail(err)
		return err
	}
	s.c.ApplyDelete(ids...)
	return nil
}

// CollaboratorStore mirrors /admin/collaborators.
type CollaboratorStore struct {
	c   *Container[models.Collaborator]
	api *services.CollaboratorService
}

func (s *CollaboratorStore) State() State[models.Collaborator] { return s.c.Snapshot() }

func (s *CollaboratorStore) List(ctx context.Context, token string, pr models.PageRequest) error {
	gen := s.c.BeginFetch()
	page, err := s.api.List(ctx, token, pr)
	s.c.CompleteFetch(gen, page, err)
	return err
}

func (s *CollaboratorStore) Create(ctx context.Context, token string, req models.CreateCollaboratorRequest) (*models.Collaborator, error) {
	collab, err := s.api.Create(ctx, token, req)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyCreate(*collab)
	return collab, nil
}

func (s *CollaboratorStore) Update(ctx context.Context, token, id string, req models.UpdateCollaboratorRequest) (*models.Collaborator, error) {
	collab, err := s.api.Update(ctx, token, id, req)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*collab)
	return collab, nil
}

func (s *CollaboratorStore) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		s.c.Fail(err)
		return err
	}
	s.c.ApplyDelete(id)
	return nil
}

// ProductStore mirrors /admin/products.
type ProductStore struct {
	c   *Container[models.Product]
	api *services.ProductService
}

func (s *ProductStore) State() State[models.Product] { return s.c.Snapshot() }

func (s *ProductStore) List(ctx context.Context, token string, pr models.PageRequest) error {
	gen := s.c.BeginFetch()
	page, err := s.api.List(ctx, token, pr)
	s.c.CompleteFetch(gen, page, err)
	return err
}

func (s *ProductStore) Create(ctx context.Context, token string, req models.CreateProductRequest, imageName string, image io.Reader) (*models.Product, error) {
	product, err := s.api.Create(ctx, token, req, imageName, image)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyCreate(*product)
	return product, nil
}

func (s *ProductStore) Update(ctx context.Context, token, id string, req models.UpdateProductRequest, imageName string, image io.Reader) (*models.Product, error) {
	product, err := s.api.Update(ctx, token, id, req, imageName, image)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*product)
	return product, nil
}

func (s *ProductStore) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		s.c.Fail(err)
		return err
	}
	s.c.ApplyDelete(id)
	return nil
}

func (s *ProductStore) DeleteMany(ctx context.Context, token string, ids []string) error {
	if err := s.api.DeleteMany(ctx, token, ids); err != nil {
		s.c.Fail(err)
		return err
	}
	s.c.ApplyDelete(ids...)
	return nil
}

// CategoryStore mirrors /admin/categories.
type CategoryStore struct {
	c   *Container[models.Category]
	api *services.CategoryService
}

func (s *CategoryStore) State() State[models.Category] { return s.c.Snapshot() }

func (s *CategoryStore) List(ctx context.Context, token string, pr models.PageRequest) error {
	gen := s.c.BeginFetch()
	page, err := s.api.List(ctx, token, pr)
	s.c.CompleteFetch(gen, page, err)
	return err
}

func (s *CategoryStore) Create(ctx context.Context, token string, req models.CategoryRequest) (*models.Category, error) {
	cat, err := s.api.Create(ctx, token, req)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyCreate(*cat)
	return cat, nil
}

func (s *CategoryStore) Update(ctx context.Context, token, id string, req models.CategoryRequest) (*models.Category, error) {
	cat, err := s.api.Update(ctx, token, id, req)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*cat)
	return cat, nil
}

func (s *CategoryStore) Delete(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		s.c.Fail(err)
		return err
	}
	s.c.ApplyDelete(id)
	return nil
}

// RoleStore mirrors the /admin/roles lookup list. Roles never page.
type RoleStore struct {
	c   *Container[models.Role]
	api *services.RoleService
}

func (s *RoleStore) State() State[models.Role] { return s.c.Snapshot() }

func (s *RoleStore) List(ctx context.Context, token string) error {
	gen := s.c.BeginFetch()
	roles, err := s.api.List(ctx, token)
	page := &models.Page[models.Role]{Items: roles, TotalPages: 1, TotalElements: int64(len(roles)), PageSize: len(roles)}
	if err != nil {
		page = nil
	}
	s.c.CompleteFetch(gen, page, err)
	return err
}

// SurveyStore mirrors whichever survey listing the page asked for last.
type SurveyStore struct {
	c   *Container[models.Survey]
	api *services.SurveyService
}

func (s *SurveyStore) State() State[models.Survey] { return s.c.Snapshot() }

func (s *SurveyStore) ListAll(ctx context.Context, token string, pr models.PageRequest) error {
	gen := s.c.BeginFetch()
	page, err := s.api.ListAll(ctx, token, pr)
	s.c.CompleteFetch(gen, page, err)
	return err
}

func (s *SurveyStore) ListOpen(ctx context.Context, token string, pr models.PageRequest) error {
	gen := s.c.BeginFetch()
	page, err := s.api.ListOpen(ctx, token, pr)
	s.c.CompleteFetch(gen, page, err)
	return err
}

func (s *SurveyStore) ListMine(ctx context.Context, token string, pr models.PageRequest) error {
	gen := s.c.BeginFetch()
	page, err := s.api.ListMine(ctx, token, pr)
	s.c.CompleteFetch(gen, page, err)
	return err
}

func (s *SurveyStore) Take(ctx context.Context, token, id string) (*models.Survey, error) {
	survey, err := s.api.Take(ctx, token, id)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*survey)
	return survey, nil
}

func (s *SurveyStore) Respond(ctx context.Context, token, id string, req models.SurveyResponseRequest) (*models.Survey, error) {
	survey, err := s.api.Respond(ctx, token, id, req)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*survey)
	return survey, nil
}

// OrderStore mirrors the order history page.
type OrderStore struct {
	c   *Container[models.Order]
	api *services.OrderService
}

func (s *OrderStore) State() State[models.Order] { return s.c.Snapshot() }

func (s *OrderStore) List(ctx context.Context, token string, pr models.PageRequest) error {
	gen := s.c.BeginFetch()
	page, err := s.api.History(ctx, token, pr)
	s.c.CompleteFetch(gen, page, err)
	return err
}

func (s *OrderStore) Get(ctx context.Context, token, id string) (*models.Order, error) {
	return s.api.Get(ctx, token, id)
}

func (s *OrderStore) Process(ctx context.Context, token, id string) (*models.Order, error) {
	order, err := s.api.Process(ctx, token, id)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*order)
	return order, nil
}

func (s *OrderStore) Complete(ctx context.Context, token, id string) (*models.Order, error) {
	order, err := s.api.Complete(ctx, token, id)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*order)
	return order, nil
}

func (s *OrderStore) Cancel(ctx context.Context, token, id string) (*models.Order, error) {
	order, err := s.api.Cancel(ctx, token, id)
	if err != nil {
		s.c.Fail(err)
		return nil, err
	}
	s.c.ApplyUpdate(*order)
	return order, nil
}
