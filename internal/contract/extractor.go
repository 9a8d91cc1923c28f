package contract

import (
	"context"

	"github.com/joseph-ayodele/contracts-analyzer/internal/extract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/schema"
)

// itemList is the envelope the list-shaped schemas ask the model for.
type itemList[T any] struct {
	Items []T `json:"item_list"`
}

// Extractor bundles the domain extractors over one engine. Independent tasks
// stay isolated: a failure in one extractor never affects another.
type Extractor struct {
	engine *extract.Engine
}

func NewExtractor(engine *extract.Engine) *Extractor {
	return &Extractor{engine: engine}
}

func runList[T any](ctx context.Context, e *extract.Engine, instructions string, s *schema.Schema, content string) ([]T, error) {
	env, err := extract.RunAs[itemList[T]](ctx, e, extract.Task{
		Instructions: instructions,
		Schema:       s,
		Content:      content,
	})
	if err != nil {
		return nil, err
	}
	return env.Items, nil
}

func (x *Extractor) BasicInfo(ctx context.Context, content string) (*BasicInfo, error) {
	out, err := extract.RunAs[BasicInfo](ctx, x.engine, extract.Task{
		Instructions: basicInfoPrompt,
		Schema:       basicInfoSchema,
		Content:      content,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (x *Extractor) Devices(ctx context.Context, content string) ([]DeviceInfo, error) {
	return runList[DeviceInfo](ctx, x.engine, devicesPrompt, devicesSchema, content)
}

func (x *Extractor) TrainingSupport(ctx context.Context, content string) ([]TrainingSupport, error) {
	return runList[TrainingSupport](ctx, x.engine, trainingPrompt, trainingSchema, content)
}

func (x *Extractor) AfterSalesSupport(ctx context.Context, content string) (*AfterSalesSupport, error) {
	out, err := extract.RunAs[AfterSalesSupport](ctx, x.engine, extract.Task{
		Instructions: afterSalesPrompt,
		Schema:       afterSalesSchema,
		Content:      content,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (x *Extractor) KeySpareParts(ctx context.Context, content string) ([]KeySparePart, error) {
	return runList[KeySparePart](ctx, x.engine, sparePartsPrompt, sparePartsSchema, content)
}

func (x *Extractor) OnsiteSLA(ctx context.Context, content string) ([]OnsiteSLA, error) {
	return runList[OnsiteSLA](ctx, x.engine, onsiteSLAPrompt, onsiteSLASchema, content)
}

func (x *Extractor) YearlyMaintenance(ctx context.Context, content string) ([]YearlyMaintenance, error) {
	return runList[YearlyMaintenance](ctx, x.engine, yearlyMaintenancePrompt, yearlyMaintenanceSchema, content)
}

func (x *Extractor) RemoteMaintenance(ctx context.Context, content string) ([]RemoteMaintenance, error) {
	return runList[RemoteMaintenance](ctx, x.engine, remoteMaintenancePrompt, remoteMaintenanceSchema, content)
}

func (x *Extractor) ContractAndCompliance(ctx context.Context, content string) (*ContractAndCompliance, error) {
	out, err := extract.RunAs[ContractAndCompliance](ctx, x.engine, extract.Task{
		Instructions: complianceInfoPrompt,
		Schema:       complianceInfoSchema,
		Content:      content,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
