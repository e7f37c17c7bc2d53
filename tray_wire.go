package xlautomaten

// apiTray is the tray wire shape. All four writable fields come back on
// every response. Responses also carry a legacy position column that is
// always null and is ignored here.
type apiTray struct {
	MachineID        *int `json:"machine_id" validate:"required"`
	Type             *int `json:"type" validate:"required,min=1,max=3"`
	MountingPosition *int `json:"mounting_position" validate:"required"`
	Slot             *int `json:"slot" validate:"required,min=1,max=18"`
}

type apiTrayResponse struct {
	apiTray
	apiDatabaseObject
}

// apiTrayWithPositions carries the positions of the tray, as embedded
// in list and delete responses and in machine responses.
type apiTrayWithPositions struct {
	apiTrayResponse
	Positions []apiPositionResponse `json:"positions"`
}

func (w apiTrayResponse) toDomain() (Tray, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Tray{}, err
	}
	return Tray{
		DatabaseObject:   base,
		MachineID:        deref(w.MachineID),
		Type:             deref(w.Type),
		MountingPosition: deref(w.MountingPosition),
		Slot:             deref(w.Slot),
	}, nil
}

func (w apiTrayWithPositions) toDomain() (TrayWithPositions, error) {
	tray, err := w.apiTrayResponse.toDomain()
	if err != nil {
		return TrayWithPositions{}, err
	}
	positions := make([]Position, len(w.Positions))
	for i, dto := range w.Positions {
		position, err := dto.toDomain()
		if err != nil {
			return TrayWithPositions{}, err
		}
		positions[i] = position
	}
	return TrayWithPositions{Tray: tray, Positions: positions}, nil
}

// trayBody serializes a tray write. Every field is required on both
// create and update.
func trayBody(tray NewTray) map[string]any {
	return map[string]any{
		"machine_id":        tray.MachineID,
		"type":              tray.Type,
		"mounting_position": tray.MountingPosition,
		"slot":              tray.Slot,
	}
}
