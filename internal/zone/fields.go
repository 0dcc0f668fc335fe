package zone

import "github.com/five82/depot/internal/listview"

// Sort field keys.
const (
	FieldName           = "name"
	FieldExternalCode   = "externalCode"
	FieldClassification = "classification"
	FieldWeightCapacity = "weightCapacity"
	FieldSaturation     = "saturation"
)

// Schema returns the list schema for storage zones. Name comes first and is
// therefore the default sort field.
func Schema() listview.Schema[StorageZone] {
	return listview.NewSchema(
		func(z StorageZone) string { return z.ID },
		listview.Field[StorageZone]{
			Key:   FieldName,
			Label: "Name",
			Kind:  listview.KindText,
			Text:  func(z StorageZone) string { return z.Name },
		},
		listview.Field[StorageZone]{
			Key:   FieldExternalCode,
			Label: "Code",
			Kind:  listview.KindText,
			Text:  func(z StorageZone) string { return z.ExternalCode },
		},
		listview.Field[StorageZone]{
			Key:   FieldClassification,
			Label: "Type",
			Kind:  listview.KindText,
			Text:  func(z StorageZone) string { return z.Classification.String() },
		},
		listview.Field[StorageZone]{
			Key:    FieldWeightCapacity,
			Label:  "Capacity",
			Kind:   listview.KindNumber,
			Number: func(z StorageZone) float64 { return z.WeightCapacity },
		},
		listview.Field[StorageZone]{
			Key:    FieldSaturation,
			Label:  "Saturation",
			Kind:   listview.KindNumber,
			Number: func(z StorageZone) float64 { return z.Saturation },
		},
	)
}
