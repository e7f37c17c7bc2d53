package xlautomaten

import (
	"fmt"
	"strconv"
	"strings"
)

// apiMastermoduleParameter is one frontend parameter of a mastermodule.
// The value is always transported as a string; the validate field says
// how to interpret it.
type apiMastermoduleParameter struct {
	Name                *string `json:"name" validate:"required"`
	Value               *string `json:"value" validate:"required"`
	Level               *string `json:"level"`
	Validate            *string `json:"validate" validate:"required,oneof=string boolean numeric"`
	ParameterizableID   *int    `json:"parameterizable_id" validate:"required"`
	ParameterizableType *string `json:"parameterizable_type" validate:"required"`
	apiDatabaseObject
}

// apiMastermodule is the mastermodule wire shape. Only id, name,
// machine_id, and last_connected are guaranteed; even the audit
// timestamps can be missing.
type apiMastermodule struct {
	ID              *int                       `json:"id" validate:"required"`
	Name            *string                    `json:"name" validate:"required"`
	MachineID       *int                       `json:"machine_id" validate:"required"`
	LastConnected   *string                    `json:"last_connected"`
	RemoteName      *string                    `json:"remote_name"`
	UpdateInterval  *int                       `json:"update_interval"`
	RequiresUpdate  *looseBool                 `json:"requires_update" validate:"omitempty,oneof=0 1"`
	CreatedAt       *string                    `json:"created_at"`
	UpdatedAt       *string                    `json:"updated_at"`
	Pin             *int                       `json:"pin"`
	Reboot          *looseBool                 `json:"reboot" validate:"omitempty,oneof=0 1"`
	SaveReboot      *looseBool                 `json:"save_reboot" validate:"omitempty,oneof=0 1"`
	OfflineReported *looseBool                 `json:"offline_reported" validate:"omitempty,oneof=0 1"`
	Parameters      []apiMastermoduleParameter `json:"parameters"`
}

func (w apiMastermoduleParameter) toDomain() (MastermoduleParameter, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return MastermoduleParameter{}, err
	}
	param := MastermoduleParameter{
		DatabaseObject:      base,
		Name:                deref(w.Name),
		ParameterizableID:   deref(w.ParameterizableID),
		ParameterizableType: deref(w.ParameterizableType),
		Type:                deref(w.Validate),
	}
	value := deref(w.Value)
	switch param.Type {
	case MastermoduleParameterNumeric:
		// An empty value counts as zero, everything else must be a
		// real number.
		if strings.TrimSpace(value) != "" {
			n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return MastermoduleParameter{}, fmt.Errorf("could not parse number from %q in mastermodule parameter %q", value, param.Name)
			}
			param.Numeric = n
		}
	case MastermoduleParameterBoolean:
		param.Bool = value != "" && value != "0" && value != "false"
	case MastermoduleParameterString:
		param.String = value
	default:
		return MastermoduleParameter{}, fmt.Errorf("unknown mastermodule parameter type %q", param.Type)
	}
	return param, nil
}

func (w apiMastermodule) toDomain() (Mastermodule, error) {
	lastConnected, err := parseOptionalAPIDate(w.LastConnected)
	if err != nil {
		return Mastermodule{}, fmt.Errorf("last_connected: %w", err)
	}
	createdAt, err := parseOptionalAPIDate(w.CreatedAt)
	if err != nil {
		return Mastermodule{}, fmt.Errorf("created_at: %w", err)
	}
	updatedAt, err := parseOptionalAPIDate(w.UpdatedAt)
	if err != nil {
		return Mastermodule{}, fmt.Errorf("updated_at: %w", err)
	}
	result := Mastermodule{
		ID:            deref(w.ID),
		Name:          deref(w.Name),
		MachineID:     deref(w.MachineID),
		LastConnected: lastConnected,
		RemoteName:    optionalStr(w.RemoteName),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if w.UpdateInterval != nil && *w.UpdateInterval != 0 {
		result.UpdateInterval = clonePtr(w.UpdateInterval)
	}
	if w.Pin != nil && *w.Pin != 0 {
		result.Pin = clonePtr(w.Pin)
	}
	// The flags surface only when set; an explicit 0 is indistinguishable
	// from a missing value upstream.
	if w.RequiresUpdate != nil && w.RequiresUpdate.Bool() {
		result.RequiresUpdate = ptr(true)
	}
	if w.Reboot != nil && w.Reboot.Bool() {
		result.Reboot = ptr(true)
	}
	if w.SaveReboot != nil && w.SaveReboot.Bool() {
		result.SaveReboot = ptr(true)
	}
	if w.OfflineReported != nil && w.OfflineReported.Bool() {
		result.OfflineReported = ptr(true)
	}
	if w.Parameters != nil {
		parameters := make([]MastermoduleParameter, len(w.Parameters))
		for i, dto := range w.Parameters {
			parameter, err := dto.toDomain()
			if err != nil {
				return Mastermodule{}, err
			}
			parameters[i] = parameter
		}
		result.Parameters = parameters
	}
	return result, nil
}
