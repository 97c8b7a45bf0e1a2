package statistic

import (
	"crmdigest/internal/models"
	"crmdigest/internal/providers"
	"crmdigest/internal/services"
	"crmdigest/internal/statistic/interfaces"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// FileManager keeps the last run state on disk as zstd-compressed JSON.
type FileManager struct {
	service    services.ReportServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.ReportServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

// SaveToFile writes through a temporary file and renames it over fileName.
func (f *FileManager) SaveToFile(fileName string) error {
	state := f.service.LastRun()

	jsonData, err := json.Marshal(state)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile restores the run state. A missing file leaves the service
// untouched and is not an error.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Infof(providers.TypeApp, "No run state at %s, starting fresh", fileName)
			return nil
		}
		return err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("run state %s: %w", fileName, err)
	}

	var state models.RunState
	if err := json.Unmarshal(decompressed, &state); err != nil {
		return fmt.Errorf("run state %s: %w", fileName, err)
	}
	f.service.PutLastRun(state)
	f.logger.Infof(providers.TypeApp, "Restored run state: last report %s, last run %s", state.LastReportDate, state.LastRunAt.Format(models.TimestampLabel))
	return nil
}
