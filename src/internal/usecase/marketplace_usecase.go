package usecase

import (
	"context"
	"errors"
	"fmt"

	"skillswitch-service/src/internal/gateway/storage"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/repository"
	httpError "skillswitch-service/src/pkg/http-error"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type MarketplaceUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	ResourceRepository ResourceStore
	Tools              []model.AffiliateTool
	Files              storage.FileLinker
	Analytics          EventTracker
}

func NewMarketplaceUseCase(
	logger log.Log,
	validate *validator.Validate,
	resourceRepository ResourceStore,
	tools []model.AffiliateTool,
	files storage.FileLinker,
	analytics EventTracker,
) *MarketplaceUseCase {
	return &MarketplaceUseCase{
		Log:                logger,
		Validate:           validate,
		ResourceRepository: resourceRepository,
		Tools:              tools,
		Files:              files,
		Analytics:          analytics,
	}
}

func (c *MarketplaceUseCase) ListResources(ctx context.Context, request *model.ListResourcesRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}
	resources, err := c.ResourceRepository.List(ctx, request.Category, request.Sort)
	if err != nil {
		c.Log.Error("marketplace-usecase", err.Error(), "ListResources", utils.ConvertString(request))
		errObj := httpError.NewInternalServerError()
		errObj.Message = "could not load resources, please try again"
		result.Error = errObj
		return result
	}
	result.Data = resources
	return result
}

// Download counts a download of a free resource and, when file storage is configured,
// returns a short-lived link to the file. Paid resources have no checkout yet.
func (c *MarketplaceUseCase) Download(ctx context.Context, request *model.DownloadResourceRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	resource, err := c.ResourceRepository.FindByID(ctx, request.ID)
	if err != nil {
		result.Error = c.resourceError("Download", request.ID, err)
		return result
	}
	if !resource.Free() {
		errObj := httpError.NewPaymentRequired()
		errObj.Message = "purchase flow not available yet"
		result.Error = errObj
		return result
	}

	var link string
	if c.Files != nil {
		link, err = c.Files.DownloadURL(ctx, resource.ObjectKey(), resource.Title)
		if err != nil {
			errObj := httpError.NewServiceUnavailable()
			errObj.Message = "file storage is unavailable, please try again"
			result.Error = errObj
			return result
		}
	}
	if err := c.ResourceRepository.IncrementDownloads(ctx, resource.ID); err != nil {
		result.Error = c.resourceError("Download", request.ID, err)
		return result
	}

	if c.Analytics != nil {
		c.Analytics.Track(model.EventResourceDownload, request.UserID, map[string]interface{}{
			"resource_id": resource.ID, "category": resource.Category,
		})
	}
	result.Data = model.DownloadResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Downloads:   resource.Downloads + 1,
		DownloadURL: link,
	}
	return result
}

func (c *MarketplaceUseCase) ListTools(ctx context.Context, request *model.ListToolsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tools := make([]model.AffiliateTool, 0, len(c.Tools))
	for _, t := range c.Tools {
		if request.Category == "" || request.Category == "all" || t.Category == request.Category {
			tools = append(tools, t)
		}
	}
	result.Data = tools
	return result
}

func (c *MarketplaceUseCase) ClickTool(ctx context.Context, request *model.ToolClickRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	for _, t := range c.Tools {
		if t.ID != request.ID {
			continue
		}
		if c.Analytics != nil {
			c.Analytics.Track(model.EventAffiliateClick, request.UserID, map[string]interface{}{
				"tool_id": t.ID, "tool_name": t.Name, "bonus": t.Bonus,
			})
		}
		result.Data = model.ToolClickResponse{RedirectURL: t.AffiliateLink, Bonus: t.Bonus}
		return result
	}

	errObj := httpError.NewNotFound()
	errObj.Message = fmt.Sprintf("tool with id %s not found", request.ID)
	result.Error = errObj
	return result
}

func (c *MarketplaceUseCase) resourceError(scope, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("resource with id %s not found", id)
		return errObj
	}
	c.Log.Error("marketplace-usecase", err.Error(), scope, id)
	errObj := httpError.NewInternalServerError()
	errObj.Message = "something went wrong, please try again"
	return errObj
}
