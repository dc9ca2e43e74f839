// Package simulator provides an in-memory catalog platform speaking the
// same REST surface the driver's client consumes. It backs the client
// tests and the standalone vmcat-sim server; it is not a faithful
// re-implementation of any real platform.
package simulator

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/ci-foundry/vmcat/pkg/platform"
)

// CatalogItem is a provisionable blueprint registered with the simulator.
type CatalogItem struct {
	ID   string
	Name string

	// SupportsShutdown controls whether machines provisioned from this
	// item expose the guest shutdown action.
	SupportsShutdown bool
}

type simResource struct {
	model            platform.ResourceModel
	supportsShutdown bool
}

type simRequest struct {
	model     platform.RequestModel
	remaining int
	failure   string
	produced  []string
	apply     func()
}

// Simulator holds the in-memory platform state. All request completion is
// poll-driven: a request stays in progress for PendingPolls status reads,
// then reaches its terminal state and applies its side effect.
type Simulator struct {
	sync.Mutex

	token        string
	pendingPolls int
	nextIP       int

	catalog   map[string]CatalogItem
	resources map[string]*simResource
	requests  map[string]*simRequest

	// nextCatalogFailure fails the next catalog request with the given
	// completion details.
	nextCatalogFailure string

	router *gin.Engine
	logger logr.Logger
}

// New returns a simulator requiring the given token (empty disables auth).
// pendingPolls is the number of status reads a request spends in progress.
func New(token string, pendingPolls int, logger logr.Logger) *Simulator {
	s := &Simulator{
		token:        token,
		pendingPolls: pendingPolls,
		nextIP:       10,
		catalog:      make(map[string]CatalogItem),
		resources:    make(map[string]*simResource),
		requests:     make(map[string]*simRequest),
		logger:       logger,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.auth)
	r.Group("/api").
		POST("/requests", s.handleSubmitCatalogRequest).
		GET("/requests/:id", s.handleGetRequest).
		GET("/requests/:id/resources", s.handleGetRequestResources).
		GET("/resources/:id", s.handleGetResource).
		POST("/resources/:id/actions/:action/requests", s.handleSubmitAction)

	s.router = r
	return s
}

// Handler exposes the simulator as an http.Handler for in-process tests.
func (s *Simulator) Handler() http.Handler {
	return s.router
}

func (s *Simulator) Run(addr string) error {
	return s.router.Run(addr)
}

// AddCatalogItem registers a blueprint.
func (s *Simulator) AddCatalogItem(item CatalogItem) {
	s.Lock()
	defer s.Unlock()
	s.catalog[item.ID] = item
}

// FailNextCatalogRequest makes the next submitted catalog request
// terminate failed with the given details.
func (s *Simulator) FailNextCatalogRequest(details string) {
	s.Lock()
	defer s.Unlock()
	s.nextCatalogFailure = details
}

// ResourceCount reports the number of live resources.
func (s *Simulator) ResourceCount() int {
	s.Lock()
	defer s.Unlock()
	return len(s.resources)
}

func (s *Simulator) auth(c *gin.Context) {
	if s.token != "" && c.GetHeader("X-Auth-Token") != s.token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, platform.ErrorModel{
			Code:    "UNAUTHORIZED",
			Message: "missing or invalid token",
		})
	}
}

func (s *Simulator) handleSubmitCatalogRequest(c *gin.Context) {
	var body platform.CatalogRequestModel
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, platform.ErrorModel{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	s.Lock()
	defer s.Unlock()

	item, ok := s.catalog[body.CatalogID]
	if !ok {
		c.JSON(http.StatusNotFound, platform.ErrorModel{Code: "CATALOG_ITEM_NOT_FOUND", Message: body.CatalogID})
		return
	}

	req := s.newRequest()
	req.failure = s.nextCatalogFailure
	s.nextCatalogFailure = ""

	req.apply = func() {
		res := s.newResource(item)
		req.produced = append(req.produced, res.model.ID)
	}

	s.logger.Info("catalog request submitted", "request", req.model.ID, "item", item.ID)
	c.JSON(http.StatusCreated, req.model)
}

func (s *Simulator) handleGetRequest(c *gin.Context) {
	s.Lock()
	defer s.Unlock()

	req, ok := s.requests[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, platform.ErrorModel{Code: platform.ErrorCodeRequestNotFound, Message: c.Param("id")})
		return
	}

	s.step(req)
	c.JSON(http.StatusOK, req.model)
}

func (s *Simulator) handleGetRequestResources(c *gin.Context) {
	s.Lock()
	defer s.Unlock()

	req, ok := s.requests[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, platform.ErrorModel{Code: platform.ErrorCodeRequestNotFound, Message: c.Param("id")})
		return
	}

	models := []platform.ResourceModel{}
	for _, id := range req.produced {
		if res, ok := s.resources[id]; ok {
			models = append(models, res.model)
		}
	}
	c.JSON(http.StatusOK, models)
}

func (s *Simulator) handleGetResource(c *gin.Context) {
	s.Lock()
	defer s.Unlock()

	res, ok := s.resources[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, platform.ErrorModel{Code: platform.ErrorCodeResourceNotFound, Message: c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, res.model)
}

func (s *Simulator) handleSubmitAction(c *gin.Context) {
	s.Lock()
	defer s.Unlock()

	res, ok := s.resources[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, platform.ErrorModel{Code: platform.ErrorCodeResourceNotFound, Message: c.Param("id")})
		return
	}

	action := platform.Action(c.Param("action"))
	req := s.newRequest()

	switch action {
	case platform.ActionPowerOn:
		res.model.PowerState = platform.PowerStateTurningOn
		req.apply = func() { res.model.PowerState = platform.PowerStateOn }
	case platform.ActionShutdown:
		if !res.supportsShutdown {
			delete(s.requests, req.model.ID)
			c.JSON(http.StatusNotFound, platform.ErrorModel{Code: platform.ErrorCodeActionNotFound, Message: string(action)})
			return
		}
		res.model.PowerState = platform.PowerStateTurningOff
		req.apply = func() { res.model.PowerState = platform.PowerStateOff }
	case platform.ActionPowerOff:
		res.model.PowerState = platform.PowerStateTurningOff
		req.apply = func() { res.model.PowerState = platform.PowerStateOff }
	case platform.ActionDestroy:
		req.apply = func() { delete(s.resources, res.model.ID) }
	default:
		delete(s.requests, req.model.ID)
		c.JSON(http.StatusNotFound, platform.ErrorModel{Code: platform.ErrorCodeActionNotFound, Message: string(action)})
		return
	}

	s.logger.Info("action request submitted", "resource", res.model.ID, "action", action, "request", req.model.ID)
	c.JSON(http.StatusCreated, req.model)
}

// step advances a request by one poll. Callers hold the lock.
func (s *Simulator) step(req *simRequest) {
	if req.model.State != platform.RequestInProgress {
		return
	}

	if req.remaining > 0 {
		req.remaining--
		return
	}

	if req.failure != "" {
		req.model.State = platform.RequestFailed
		req.model.CompletionDetails = req.failure
		return
	}

	req.model.State = platform.RequestSuccessful
	req.model.CompletionDetails = "request completed"
	if req.apply != nil {
		req.apply()
	}
}

func (s *Simulator) newRequest() *simRequest {
	req := &simRequest{
		model: platform.RequestModel{
			ID:    uuid.New().String(),
			State: platform.RequestInProgress,
		},
		remaining: s.pendingPolls,
	}
	s.requests[req.model.ID] = req
	return req
}

func (s *Simulator) newResource(item CatalogItem) *simResource {
	id := fmt.Sprintf("vm-%s", strings.Split(uuid.New().String(), "-")[0])
	s.nextIP++

	res := &simResource{
		model: platform.ResourceModel{
			ID:          id,
			Name:        fmt.Sprintf("%s-%s", item.Name, strings.TrimPrefix(id, "vm-")),
			Kind:        platform.KindVirtualMachine,
			IPAddresses: []string{fmt.Sprintf("10.0.0.%d", s.nextIP)},
			PowerState:  platform.PowerStateOff,
			SupportedActions: []string{
				string(platform.ActionPowerOn),
				string(platform.ActionPowerOff),
				string(platform.ActionDestroy),
			},
		},
		supportsShutdown: item.SupportsShutdown,
	}
	if item.SupportsShutdown {
		res.model.SupportedActions = append(res.model.SupportedActions, string(platform.ActionShutdown))
	}

	s.resources[id] = res
	return res
}
