package ragformat

import (
	"log/slog"
	"os"

	"github.com/siherrmann/ragformat/core/format"
	"github.com/siherrmann/ragformat/helper"
	"github.com/siherrmann/ragformat/model"
)

// Formatter turns query contexts into user facing query responses
type Formatter struct {
	config   *helper.Configuration
	defaults model.FormatConfig
	// Logging
	log *slog.Logger
}

// NewFormatter creates a new Formatter from the given configuration.
// A nil configuration is read from the environment.
func NewFormatter(config *helper.Configuration) (*Formatter, error) {
	if config == nil {
		var err error
		config, err = helper.NewConfiguration()
		if err != nil {
			return nil, helper.NewError("read configuration", err)
		}
	}

	err := config.Validate()
	if err != nil {
		return nil, helper.NewError("validate configuration", err)
	}

	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: config.SlogLevel(),
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	defaults := model.DefaultFormatConfig()
	defaults.ExtraChunkFields = append(defaults.ExtraChunkFields, config.ExtraChunkFields...)

	f := &Formatter{
		config:   config,
		defaults: defaults,
		log:      logger,
	}

	logger.Debug("Initialized Formatter", slog.Any("extra_chunk_fields", f.defaults.ExtraChunkFields))

	return f, nil
}

// SetLogger replaces the logger of the formatter
func (f *Formatter) SetLogger(logger *slog.Logger) {
	if logger != nil {
		f.log = logger
	}
}

// Config returns the configuration the formatter was created with
func (f *Formatter) Config() *helper.Configuration {
	return f.config
}

// Format builds the response for a query context.
// The extra chunk fields are the given ones followed by the configured defaults.
func (f *Formatter) Format(qc *model.QueryContext, extraChunkFields ...string) *model.QueryResponse {
	config := f.formatConfig(extraChunkFields)

	if qc != nil && !qc.Mode.IsKnown() {
		f.log.Debug("Formatting response for unknown query mode", slog.String("query_mode", string(qc.Mode)))
	}

	response := format.ToUserFormat(qc, config)

	info := response.Metadata.ProcessingInfo
	f.log.Debug(
		"Formatted query response",
		slog.String("query_mode", string(response.Metadata.QueryMode)),
		slog.Int("entities", info.TotalEntities),
		slog.Int("relations", info.TotalRelations),
		slog.Int("chunks", info.TotalChunks),
		slog.Int("references", info.TotalReferences),
		slog.Any("extra_chunk_fields", config.Normalized()),
	)

	return response
}

// FormatRaw builds the response for loosely typed collections, for example
// decoded JSON arrays. Every element has to be an object, otherwise the call
// fails with model.ErrInvalidRecord before anything is formatted.
func (f *Formatter) FormatRaw(entities, relations, chunks, references []interface{}, mode model.QueryMode, extraChunkFields ...string) (*model.QueryResponse, error) {
	qc, err := queryContextFromSlices(entities, relations, chunks, references)
	if err != nil {
		f.log.Error("Rejected query context", slog.String("error", err.Error()))
		return nil, err
	}
	qc.Mode = mode

	return f.Format(qc, extraChunkFields...), nil
}

func (f *Formatter) formatConfig(extraChunkFields []string) *model.FormatConfig {
	fields := make([]string, 0, len(extraChunkFields)+len(f.defaults.ExtraChunkFields))
	fields = append(fields, extraChunkFields...)
	fields = append(fields, f.defaults.ExtraChunkFields...)
	return &model.FormatConfig{ExtraChunkFields: fields}
}

func queryContextFromSlices(entities, relations, chunks, references []interface{}) (*model.QueryContext, error) {
	var err error
	qc := &model.QueryContext{}

	qc.Entities, err = model.RecordsFromSlice("entity", entities)
	if err != nil {
		return nil, helper.NewError("convert entities", err)
	}
	qc.Relations, err = model.RecordsFromSlice("relation", relations)
	if err != nil {
		return nil, helper.NewError("convert relations", err)
	}
	qc.Chunks, err = model.RecordsFromSlice("chunk", chunks)
	if err != nil {
		return nil, helper.NewError("convert chunks", err)
	}
	qc.References, err = model.RecordsFromSlice("reference", references)
	if err != nil {
		return nil, helper.NewError("convert references", err)
	}

	return qc, nil
}
