package ports

//go:generate mockery --config ../../.mockery.yaml
