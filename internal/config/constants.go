package config

const (
	// Configuration file paths
	ConfigPathConsumables       = "configs/consumables.json"
	ConfigPathConsumablesSchema = "configs/schemas/consumables.schema.json"
)
