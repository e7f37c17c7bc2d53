package xlautomaten

import (
	"context"
	"strconv"
)

// Statuses a mapping can report. Selection empty means the machine
// believes the position ran out; product not detected means the
// photocell did not see an article fall during the last vend.
const (
	MappingStatusSelectionEmpty     = "selection_empty"
	MappingStatusProductNotDetected = "product_not_detected"
)

// Mapping is the assignment of an article to a dispensing position.
// The article and position are fixed after creation.
type Mapping struct {
	DatabaseObject
	ArticleID  int
	PositionID int
	// Inventory is how many articles are currently in the position.
	Inventory int
	Empty     *bool
	// Status is read-only and one of the MappingStatus constants when
	// present.
	Status *string
}

// MappingTray is the tray of a mapped position, including its machine.
type MappingTray struct {
	Tray
	Machine Machine
}

// MappingPosition is the position a mapping points at, including the
// tray and machine it sits in.
type MappingPosition struct {
	Position
	Tray MappingTray
}

// MappingWithPosition is a mapping together with its position details,
// as returned by every mapping operation except UpdateMapping.
type MappingWithPosition struct {
	Mapping
	Position MappingPosition
}

// MappingWithArticle is a mapping together with its article, as
// returned by UpdateMapping.
type MappingWithArticle struct {
	Mapping
	Article Article
}

// NewMapping is the input for CreateMapping. ArticleID and PositionID
// are required; nil optional fields are omitted from the request.
type NewMapping struct {
	ArticleID  int
	PositionID int
	Inventory  *int
	Empty      *bool
}

// MappingPatch describes changes for UpdateMapping. nil fields are left
// unchanged.
type MappingPatch struct {
	Inventory *int
	Empty     *bool
}

// CreateMapping creates a new mapping and returns it with its position
// details. Creating a mapping for an article and position pair that is
// already mapped replaces the old mapping. The server answers with the
// whole mapping list; the created entry is located in it by the
// submitted article and position IDs.
func (c *Client) CreateMapping(ctx context.Context, mapping NewMapping) (*MappingWithPosition, error) {
	var dtos []apiMappingWithPosition
	if err := c.post(ctx, "mapping", mappingBody(mapping), &dtos); err != nil {
		return nil, err
	}
	for _, dto := range dtos {
		if deref(dto.ArticleID) != mapping.ArticleID || deref(dto.PositionID) != mapping.PositionID {
			continue
		}
		result, err := dto.toDomain()
		if err != nil {
			return nil, &SchemaError{Endpoint: "mapping", Err: err}
		}
		return &result, nil
	}
	return nil, &InvariantError{Message: "failed to create a new mapping: the API did not return the new mapping"}
}

// GetMapping returns a single mapping by id, with its position details.
func (c *Client) GetMapping(ctx context.Context, id int) (*MappingWithPosition, error) {
	endpoint := "mapping/" + strconv.Itoa(id)
	var dto apiMappingWithPosition
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// GetMappings returns all mappings with their position details.
func (c *Client) GetMappings(ctx context.Context) ([]MappingWithPosition, error) {
	var dtos []apiMappingWithPosition
	if err := c.get(ctx, "mappings", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("mappings", dtos, apiMappingWithPosition.toDomain)
}

// UpdateMapping applies the patch to an existing mapping. Only the
// inventory and the empty flag can be edited; the mapping endpoint
// expects a full write, so the current mapping is always fetched first.
func (c *Client) UpdateMapping(ctx context.Context, id int, patch MappingPatch) (*MappingWithArticle, error) {
	current, err := c.GetMapping(ctx, id)
	if err != nil {
		return nil, err
	}
	update := NewMapping{
		ArticleID:  current.ArticleID,
		PositionID: current.PositionID,
		Inventory:  ptr(valueOr(patch.Inventory, current.Inventory)),
		Empty:      clonePtr(current.Empty),
	}
	if patch.Empty != nil {
		update.Empty = patch.Empty
	}

	endpoint := "mapping/" + strconv.Itoa(id)
	var dto apiMappingWithArticle
	if err := c.put(ctx, endpoint, mappingBody(update), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeleteMapping deletes a mapping and returns the mappings that remain,
// with their position details.
func (c *Client) DeleteMapping(ctx context.Context, id int) ([]MappingWithPosition, error) {
	endpoint := "mapping/" + strconv.Itoa(id)
	var dtos []apiMappingWithPosition
	if err := c.del(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}
	return toDomainList(endpoint, dtos, apiMappingWithPosition.toDomain)
}
