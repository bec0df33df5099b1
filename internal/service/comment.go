package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"kra.app/feedback/common/id"
	"kra.app/feedback/common/logger"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/realtime"
	"kra.app/feedback/internal/store"
)

var (
	ErrIssueNotFound    = errors.New("issue not found")
	ErrThreadClosed     = errors.New("cannot add comments to completed threads")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("caller is not the comment author")
)

// Side-effect operations reported in CommentResult.SideEffects.
const (
	SideEffectTeamLookup   = "team_lookup"
	SideEffectLivePush     = "live_push"
	SideEffectNotification = "notification"
	SideEffectLeaderboard  = "leaderboard"
)

type CreateCommentParams struct {
	IssueID       int64
	Text          string
	AttachmentURL *string
}

// SideEffectFailure is a best-effort step that failed after the comment was committed.
// UserID is the notification target, or zero when the step had none.
type SideEffectFailure struct {
	Op     string
	UserID int64
	Err    error
}

type CommentResult struct {
	Comment       *model.CommentWithAuthor
	Issue         *model.Issue
	StatusChanged bool
	SideEffects   []SideEffectFailure
}

type CommentService interface {
	Create(ctx context.Context, caller *model.User, params CreateCommentParams) (*CommentResult, error)
	ListByIssue(ctx context.Context, issueID int64) ([]model.CommentWithAuthor, error)
	Update(ctx context.Context, caller *model.User, commentID int64, text string) (*model.Comment, error)
	Delete(ctx context.Context, caller *model.User, commentID int64) error
}

type commentService struct {
	txRunner      TxRunner
	issues        store.IssueStore
	comments      store.CommentStore
	users         store.UserStore
	notifications store.NotificationStore
	leaderboard   store.LeaderboardStore
	publisher     realtime.Publisher
	concurrency   int
}

func NewCommentService(
	txRunner TxRunner,
	issues store.IssueStore,
	comments store.CommentStore,
	users store.UserStore,
	notifications store.NotificationStore,
	leaderboard store.LeaderboardStore,
	publisher realtime.Publisher,
	concurrency int,
) CommentService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &commentService{
		txRunner:      txRunner,
		issues:        issues,
		comments:      comments,
		users:         users,
		notifications: notifications,
		leaderboard:   leaderboard,
		publisher:     publisher,
		concurrency:   concurrency,
	}
}

// replyMessages returns the notification texts for a reply by caller. notify is
// false for roles whose replies notify nobody.
func replyMessages(caller *model.User) (creator, team string, notify bool, err error) {
	team = fmt.Sprintf("%s replied to a thread", caller.Name)
	switch caller.Role {
	case model.RoleDataScience:
		return fmt.Sprintf("%s replied to your thread", caller.Name), team, true, nil
	case model.RoleBusiness:
		return fmt.Sprintf("%s replied to a thread you're following", caller.Name), team, true, nil
	case model.RoleAdmin:
		return "", "", false, nil
	default:
		return "", "", false, fmt.Errorf("%w: %q", model.ErrUnknownRole, caller.Role)
	}
}

// startsWork reports whether a reply moves the issue from pending to in progress.
func startsWork(caller *model.User, issue *model.Issue) bool {
	return caller.Role == model.RoleDataScience &&
		caller.InTeam(issue.AssignedTeamID) &&
		issue.Status == model.IssueStatusPending
}

func (s *commentService) Create(ctx context.Context, caller *model.User, params CreateCommentParams) (*CommentResult, error) {
	if params.IssueID <= 0 || strings.TrimSpace(params.Text) == "" {
		return nil, invalid("Issue ID and comment text are required")
	}

	creatorMsg, teamMsg, notify, err := replyMessages(caller)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    &caller.ID,
		IssueID:   &params.IssueID,
		Component: "comment",
	})

	var (
		issue   *model.Issue
		comment *model.Comment
		changed bool
	)
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		locked, err := stores.Issues().GetForUpdate(ctx, params.IssueID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrIssueNotFound
			}
			return fmt.Errorf("locking issue: %w", err)
		}
		if locked.IsClosed() {
			return ErrThreadClosed
		}

		comment = &model.Comment{
			ID:            id.New(),
			IssueID:       locked.ID,
			UserID:        caller.ID,
			Text:          params.Text,
			AttachmentURL: params.AttachmentURL,
		}
		if err := stores.Comments().Create(ctx, comment); err != nil {
			return fmt.Errorf("creating comment: %w", err)
		}

		if startsWork(caller, locked) {
			updated, err := stores.Issues().UpdateStatus(ctx, locked.ID, model.IssueStatusInProgress)
			if err != nil {
				return fmt.Errorf("starting work on issue: %w", err)
			}
			locked = updated
			changed = true
		}

		issue = locked
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrIssueNotFound) && !errors.Is(err, ErrThreadClosed) {
			slog.ErrorContext(ctx, "failed to create comment", "error", err)
		}
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{CommentID: &comment.ID})
	result := &CommentResult{
		Comment: &model.CommentWithAuthor{
			Comment:  *comment,
			UserName: caller.Name,
			UserRole: caller.Role,
		},
		Issue:         issue,
		StatusChanged: changed,
	}

	if notify {
		result.SideEffects = s.fanOut(ctx, caller, issue, result.Comment, creatorMsg, teamMsg)
	}
	if caller.Role == model.RoleDataScience {
		if failure := s.recordResponse(ctx, caller, comment); failure != nil {
			result.SideEffects = append(result.SideEffects, *failure)
		}
	}

	for _, f := range result.SideEffects {
		slog.WarnContext(ctx, "comment side effect failed",
			"op", f.Op,
			"target_user_id", f.UserID,
			"error", f.Err,
		)
	}

	slog.InfoContext(ctx, "comment created",
		"status_changed", changed,
		"side_effect_failures", len(result.SideEffects),
	)
	return result, nil
}

type delivery struct {
	userID  int64
	message string
}

// replyEvent is the live payload pushed to each recipient.
type replyEvent struct {
	IssueID int64                    `json:"issue_id,string"`
	Comment *model.CommentWithAuthor `json:"comment"`
}

// recipients lists who hears about a reply. The creator comes first so their message
// wins when they are also on the assigned team. The caller is excluded even when they
// created the thread.
func (s *commentService) recipients(ctx context.Context, caller *model.User, issue *model.Issue, creatorMsg, teamMsg string) ([]delivery, *SideEffectFailure) {
	seen := map[int64]bool{caller.ID: true}
	var out []delivery

	if !seen[issue.SubmittedByUserID] {
		seen[issue.SubmittedByUserID] = true
		out = append(out, delivery{userID: issue.SubmittedByUserID, message: creatorMsg})
	}

	if issue.AssignedTeamID == nil {
		return out, nil
	}

	members, err := s.users.ListByTeam(ctx, *issue.AssignedTeamID)
	if err != nil {
		return out, &SideEffectFailure{Op: SideEffectTeamLookup, Err: err}
	}
	for _, m := range members {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, delivery{userID: m.ID, message: teamMsg})
	}
	return out, nil
}

func (s *commentService) fanOut(ctx context.Context, caller *model.User, issue *model.Issue, comment *model.CommentWithAuthor, creatorMsg, teamMsg string) []SideEffectFailure {
	span := logger.StartSpan(ctx, "comment.fanout")
	defer span.End()
	ctx = span.Context()

	deliveries, lookupFailure := s.recipients(ctx, caller, issue, creatorMsg, teamMsg)

	var (
		mu       sync.Mutex
		failures []SideEffectFailure
	)
	if lookupFailure != nil {
		failures = append(failures, *lookupFailure)
	}

	event := replyEvent{IssueID: issue.ID, Comment: comment}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, d := range deliveries {
		g.Go(func() error {
			if failed := s.deliver(ctx, d, issue.ID, event); len(failed) > 0 {
				mu.Lock()
				failures = append(failures, failed...)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	span.Span().SetAttributes(
		attribute.Int("fanout.recipients", len(deliveries)),
		attribute.Int("fanout.failures", len(failures)),
	)
	return failures
}

// deliver pushes the live event and writes the durable notification. Either may
// fail without affecting the other.
func (s *commentService) deliver(ctx context.Context, d delivery, issueID int64, event replyEvent) []SideEffectFailure {
	var failed []SideEffectFailure

	if err := s.publisher.Publish(ctx, d.userID, model.EventNewReply, event); err != nil {
		failed = append(failed, SideEffectFailure{Op: SideEffectLivePush, UserID: d.userID, Err: err})
	}

	n := &model.Notification{
		ID:      id.New(),
		UserID:  d.userID,
		IssueID: &issueID,
		Type:    model.NotificationTypeReply,
		Message: d.message,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		failed = append(failed, SideEffectFailure{Op: SideEffectNotification, UserID: d.userID, Err: err})
	}

	return failed
}

func (s *commentService) recordResponse(ctx context.Context, caller *model.User, comment *model.Comment) *SideEffectFailure {
	activity := &model.LeaderboardActivity{
		ID:        id.New(),
		UserID:    caller.ID,
		IssueID:   comment.IssueID,
		CommentID: &comment.ID,
		Action:    model.LeaderboardActionResponded,
	}
	recorded, err := s.leaderboard.Record(ctx, activity)
	if err != nil {
		return &SideEffectFailure{Op: SideEffectLeaderboard, UserID: caller.ID, Err: err}
	}
	if !recorded {
		slog.DebugContext(ctx, "leaderboard activity already recorded")
	}
	return nil
}

func (s *commentService) ListByIssue(ctx context.Context, issueID int64) ([]model.CommentWithAuthor, error) {
	if _, err := s.issues.GetByID(ctx, issueID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	comments, err := s.comments.ListByIssue(ctx, issueID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list comments", "error", err, "issue_id", issueID)
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

// authored loads a comment and checks that caller wrote it.
func (s *commentService) authored(ctx context.Context, caller *model.User, commentID int64) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("getting comment: %w", err)
	}
	if comment.UserID != caller.ID {
		return nil, ErrNotCommentAuthor
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, caller *model.User, commentID int64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalid("Comment text is required")
	}

	if _, err := s.authored(ctx, caller, commentID); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateText(ctx, commentID, text)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		slog.ErrorContext(ctx, "failed to update comment", "error", err, "comment_id", commentID)
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return updated, nil
}

func (s *commentService) Delete(ctx context.Context, caller *model.User, commentID int64) error {
	if _, err := s.authored(ctx, caller, commentID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCommentNotFound
		}
		slog.ErrorContext(ctx, "failed to delete comment", "error", err, "comment_id", commentID)
		return fmt.Errorf("deleting comment: %w", err)
	}

	slog.InfoContext(ctx, "comment deleted", "comment_id", commentID)
	return nil
}
