package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/pkg/logger"
	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/repository/memory"
	"pdf-evidence-be/pkg/pipeline"
	"pdf-evidence-be/pkg/processing"

	"github.com/gofiber/fiber/v2"
)

type IFileService interface {
	Upload(ctx context.Context, clientID string, inputs []pipeline.Input) (*dto.UploadFilesResponse, error)
	List(ctx context.Context, clientID string) (*dto.ListFilesResponse, error)
	Delete(ctx context.Context, clientID string, fileName string) (*dto.DeleteFileResponse, error)
}

type fileService struct {
	trackers       *memory.TrackerRepository
	client         *processing.Client
	notifiers      INotifierService
	publisher      IPublisherService
	analysisTopic  string
	maxUploadBytes int64
	logger         logger.ILogger
	processTimeout time.Duration
}

func NewFileService(
	trackers *memory.TrackerRepository,
	client *processing.Client,
	notifiers INotifierService,
	publisher IPublisherService,
	analysisTopic string,
	maxUploadBytes int64,
	log logger.ILogger,
) IFileService {
	return &fileService{
		trackers:       trackers,
		client:         client,
		notifiers:      notifiers,
		publisher:      publisher,
		analysisTopic:  analysisTopic,
		maxUploadBytes: maxUploadBytes,
		logger:         log,
		processTimeout: 10 * time.Minute,
	}
}

// Upload validates the batch, queues the accepted files and returns
// immediately. Processing continues in the background; progress reaches the
// client over the websocket.
func (s *fileService) Upload(ctx context.Context, clientID string, inputs []pipeline.Input) (*dto.UploadFilesResponse, error) {
	if len(inputs) == 0 {
		return nil, serverutils.BadRequest("no files provided")
	}

	tracker := s.trackers.GetOrCreate(clientID)
	runner := pipeline.NewRunner(
		tracker,
		s.client,
		s.notifiers.ForClient(clientID),
		s.analysisTopic,
		s.maxUploadBytes,
		s.refreshEvidence(clientID),
	)

	accepted, rejected, jobs := runner.Accept(inputs)

	resp := &dto.UploadFilesResponse{}
	for _, item := range accepted {
		resp.Accepted = append(resp.Accepted, toPipelineItemResponse(item))
	}
	for _, rej := range rejected {
		resp.Rejected = append(resp.Rejected, dto.FileRejection{FileName: rej.FileName, Reason: rej.Reason})
	}

	if len(jobs) > 0 {
		// Detach from the request context so the batch survives the response.
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), s.processTimeout)
			defer cancel()
			runner.Process(bgCtx, jobs)
		}()
	}

	return resp, nil
}

// List merges the remote store listing with in-flight pipeline items. Remote
// files win on name collision since they carry the authoritative URL.
func (s *fileService) List(ctx context.Context, clientID string) (*dto.ListFilesResponse, error) {
	remote, err := s.client.ListFiles(ctx)
	if err != nil {
		s.logger.Warn("FileService", "Remote listing unavailable, serving tracked items only", map[string]interface{}{"error": err.Error()})
		remote = nil
	}

	resp := &dto.ListFilesResponse{Files: []dto.FileEntry{}}
	seen := make(map[string]bool)

	for _, f := range remote {
		entry := dto.FileEntry{
			FileName:  f.Name,
			URL:       f.URL,
			SizeBytes: f.Size,
			Stage:     string(pipeline.StageComplete),
			Progress:  100,
		}
		seen[f.Name] = true
		resp.Files = append(resp.Files, entry)
	}

	if tracker, ok := s.trackers.Get(clientID); ok {
		for _, item := range tracker.Items() {
			if seen[item.FileName] {
				continue
			}
			resp.Files = append(resp.Files, dto.FileEntry{
				FileName:  item.FileName,
				URL:       item.URL,
				SizeBytes: item.Size,
				Stage:     string(item.Stage),
				Progress:  item.Progress,
				Error:     item.Error,
				Analysis:  item.Analysis,
			})
		}
	}

	sort.SliceStable(resp.Files, func(i, j int) bool {
		return resp.Files[i].FileName < resp.Files[j].FileName
	})

	return resp, nil
}

func (s *fileService) Delete(ctx context.Context, clientID string, fileName string) (*dto.DeleteFileResponse, error) {
	if fileName == "" {
		return nil, serverutils.BadRequest("file name is required")
	}

	err := s.client.DeleteFile(ctx, fileName)
	if err != nil {
		if apiErr, ok := err.(*processing.APIError); ok && apiErr.StatusCode == fiber.StatusNotFound {
			return nil, serverutils.NotFound("file not found")
		}
		return nil, err
	}

	if tracker, ok := s.trackers.Get(clientID); ok {
		tracker.RemoveByName(fileName)
	}

	return &dto.DeleteFileResponse{FileName: fileName}, nil
}

// refreshEvidence returns the best-effort re-fetch hook run after a batch
// finishes. Read-your-writes is not guaranteed, so the client is told to
// re-pull the evidence list rather than handed the records directly.
func (s *fileService) refreshEvidence(clientID string) func(ctx context.Context) {
	return func(ctx context.Context) {
		if _, err := s.client.ListEvidence(ctx); err != nil {
			s.logger.Warn("FileService", "Evidence refresh failed", map[string]interface{}{"error": err.Error()})
			return
		}

		payload := dto.PipelineStatusMessage{
			ClientId: clientID,
			Stage:    "evidence_refreshed",
			Message:  "Evidence list updated",
			Progress: 100,
		}
		msgJson, err := json.Marshal(payload)
		if err != nil {
			return
		}
		if err := s.publisher.Publish(ctx, msgJson); err != nil {
			s.logger.Warn("FileService", "Failed to publish evidence refresh", map[string]interface{}{"error": err.Error()})
		}
	}
}

func toPipelineItemResponse(item pipeline.Item) dto.PipelineItemResponse {
	return dto.PipelineItemResponse{
		Id:        item.Id,
		FileName:  item.FileName,
		Size:      item.Size,
		Stage:     string(item.Stage),
		Progress:  item.Progress,
		URL:       item.URL,
		Error:     item.Error,
		Analysis:  item.Analysis,
		UpdatedAt: item.UpdatedAt,
	}
}
