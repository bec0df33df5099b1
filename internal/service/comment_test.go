package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"

	"kra.app/feedback/common/id"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
	"kra.app/feedback/internal/store"
)

var _ = Describe("CommentService", func() {
	const (
		issueID   int64 = 500
		creatorID int64 = 10
		teamID    int64 = 7
	)

	var (
		svc           service.CommentService
		issues        *mockIssueStore
		comments      *mockCommentStore
		users         *mockUserStore
		notifications *mockNotificationStore
		leaderboard   *mockLeaderboardStore
		publisher     *mockPublisher
		txCalls       int
		ctx           context.Context

		issue       *model.Issue
		business    *model.User
		analyst     *model.User
		outsider    *model.User
		admin       *model.User
		teammate    *model.User
		teamMembers []model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())

		issue = &model.Issue{
			ID:                issueID,
			DashboardID:       1,
			Title:             "Revenue chart is off",
			Status:            model.IssueStatusPending,
			SubmittedByUserID: creatorID,
			AssignedTeamID:    int64Ptr(teamID),
		}
		business = &model.User{ID: creatorID, Name: "Bea", Role: model.RoleBusiness}
		analyst = &model.User{ID: 20, Name: "Dev", Role: model.RoleDataScience, TeamID: int64Ptr(teamID)}
		teammate = &model.User{ID: 21, Name: "Tia", Role: model.RoleDataScience, TeamID: int64Ptr(teamID)}
		outsider = &model.User{ID: 30, Name: "Oz", Role: model.RoleDataScience, TeamID: int64Ptr(99)}
		admin = &model.User{ID: 40, Name: "Ada", Role: model.RoleAdmin}
		teamMembers = []model.User{*analyst, *teammate}

		issues = &mockIssueStore{
			getForUpdateFn: func(_ context.Context, id int64) (*model.Issue, error) {
				if id != issueID {
					return nil, store.ErrNotFound
				}
				cp := *issue
				return &cp, nil
			},
			getByIDFn: func(_ context.Context, id int64) (*model.Issue, error) {
				if id != issueID {
					return nil, store.ErrNotFound
				}
				cp := *issue
				return &cp, nil
			},
			updateStatusFn: func(_ context.Context, _ int64, status model.IssueStatus) (*model.Issue, error) {
				cp := *issue
				cp.Status = status
				return &cp, nil
			},
		}
		comments = &mockCommentStore{}
		users = &mockUserStore{
			listByTeamFn: func(_ context.Context, id int64) ([]model.User, error) {
				Expect(id).To(Equal(teamID))
				return teamMembers, nil
			},
		}
		notifications = &mockNotificationStore{}
		leaderboard = &mockLeaderboardStore{}
		publisher = &mockPublisher{}
		txCalls = 0

		tx := &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				txCalls++
				return fn(&mockStoreProvider{issues: issues, comments: comments})
			},
		}
		svc = service.NewCommentService(tx, issues, comments, users, notifications, leaderboard, publisher, 4)
	})

	create := func(caller *model.User, text string) (*service.CommentResult, error) {
		return svc.Create(ctx, caller, service.CreateCommentParams{IssueID: issueID, Text: text})
	}

	Describe("Create", func() {
		It("rejects a missing issue id or empty text before touching the store", func() {
			_, err := svc.Create(ctx, business, service.CreateCommentParams{Text: "hi"})
			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())

			_, err = create(business, "   ")
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(txCalls).To(BeZero())
		})

		It("returns ErrIssueNotFound for an unknown issue", func() {
			_, err := svc.Create(ctx, business, service.CreateCommentParams{IssueID: 1, Text: "hi"})
			Expect(err).To(MatchError(service.ErrIssueNotFound))
			Expect(comments.createCalls).To(BeZero())
		})

		It("refuses comments on completed threads and writes nothing", func() {
			issue.Status = model.IssueStatusComplete

			result, err := create(analyst, "late reply")

			Expect(err).To(MatchError(service.ErrThreadClosed))
			Expect(result).To(BeNil())
			Expect(comments.createCalls).To(BeZero())
			Expect(issues.updateStatusCalls).To(BeZero())
			Expect(notifications.recipients()).To(BeEmpty())
			Expect(publisher.events()).To(BeEmpty())
		})

		It("rejects callers with an unknown role", func() {
			ghost := &model.User{ID: 77, Name: "Ghost", Role: model.Role("ghost")}

			_, err := create(ghost, "boo")

			Expect(err).To(MatchError(model.ErrUnknownRole))
			Expect(txCalls).To(BeZero())
		})

		Context("when an assigned data-science member replies to a pending thread", func() {
			It("moves the thread to in progress", func() {
				result, err := create(analyst, "Looking into it")

				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusChanged).To(BeTrue())
				Expect(result.Issue.Status).To(Equal(model.IssueStatusInProgress))
				Expect(issues.updateStatusCalls).To(Equal(1))
			})

			It("notifies the creator and the rest of the team but not the caller", func() {
				result, err := create(analyst, "Looking into it")

				Expect(err).NotTo(HaveOccurred())
				Expect(result.SideEffects).To(BeEmpty())
				Expect(notifications.recipients()).To(Equal(map[int64]string{
					creatorID:   "Dev replied to your thread",
					teammate.ID: "Dev replied to a thread",
				}))

				events := publisher.events()
				Expect(events).To(HaveLen(2))
				for _, e := range events {
					Expect(e.event).To(Equal(model.EventNewReply))
					Expect(e.userID).NotTo(Equal(analyst.ID))
				}
			})

			It("records leaderboard activity keyed by the comment", func() {
				result, err := create(analyst, "Looking into it")

				Expect(err).NotTo(HaveOccurred())
				Expect(leaderboard.recorded).To(HaveLen(1))
				Expect(leaderboard.recorded[0].UserID).To(Equal(analyst.ID))
				Expect(leaderboard.recorded[0].Action).To(Equal(model.LeaderboardActionResponded))
				Expect(*leaderboard.recorded[0].CommentID).To(Equal(result.Comment.ID))
			})

			It("decorates the comment with the author's name and role", func() {
				result, err := create(analyst, "Looking into it")

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Comment.ID).NotTo(BeZero())
				Expect(result.Comment.IssueID).To(Equal(issueID))
				Expect(result.Comment.UserID).To(Equal(analyst.ID))
				Expect(result.Comment.UserName).To(Equal("Dev"))
				Expect(result.Comment.UserRole).To(Equal(model.RoleDataScience))
			})
		})

		It("leaves an in-progress thread alone", func() {
			issue.Status = model.IssueStatusInProgress

			result, err := create(analyst, "still on it")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusChanged).To(BeFalse())
			Expect(issues.updateStatusCalls).To(BeZero())
		})

		It("does not start work when a data-science user from another team replies", func() {
			result, err := create(outsider, "drive-by")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusChanged).To(BeFalse())
			Expect(result.Issue.Status).To(Equal(model.IssueStatusPending))
			Expect(leaderboard.recorded).To(HaveLen(1))
		})

		It("does not start work on a thread with no assigned team", func() {
			issue.AssignedTeamID = nil

			result, err := create(analyst, "anyone?")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusChanged).To(BeFalse())
			Expect(notifications.recipients()).To(Equal(map[int64]string{
				creatorID: "Dev replied to your thread",
			}))
		})

		Context("when a business user replies", func() {
			It("notifies the assigned team and never the creator replying to their own thread", func() {
				result, err := create(business, "any update?")

				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusChanged).To(BeFalse())
				Expect(notifications.recipients()).To(Equal(map[int64]string{
					analyst.ID:  "Bea replied to a thread",
					teammate.ID: "Bea replied to a thread",
				}))
				Expect(leaderboard.recorded).To(BeEmpty())
			})

			It("tells the creator that someone replied to a thread they follow", func() {
				other := &model.User{ID: 11, Name: "Bob", Role: model.RoleBusiness}

				_, err := create(other, "same problem here")

				Expect(err).NotTo(HaveOccurred())
				Expect(notifications.recipients()).To(HaveKeyWithValue(creatorID, "Bob replied to a thread you're following"))
				Expect(notifications.recipients()).To(HaveLen(3))
			})
		})

		It("sends admins' replies to nobody", func() {
			result, err := create(admin, "closing soon")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.SideEffects).To(BeEmpty())
			Expect(notifications.recipients()).To(BeEmpty())
			Expect(publisher.events()).To(BeEmpty())
			Expect(leaderboard.recorded).To(BeEmpty())
		})

		It("gives a creator who is also on the team only the creator message", func() {
			teamMembers = append(teamMembers, model.User{ID: creatorID, Name: "Bea"})

			_, err := create(analyst, "hi")

			Expect(err).NotTo(HaveOccurred())
			Expect(notifications.recipients()).To(HaveKeyWithValue(creatorID, "Dev replied to your thread"))
			Expect(notifications.recipients()).To(HaveLen(2))
		})

		Context("when side effects fail", func() {
			It("keeps the comment and reports each failure", func() {
				publisher.publishFn = func(_ context.Context, userID int64, _ string, _ any) error {
					if userID == creatorID {
						return errors.New("redis down")
					}
					return nil
				}
				notifications.createFn = func(_ context.Context, n *model.Notification) error {
					if n.UserID == teammate.ID {
						return errors.New("insert failed")
					}
					return nil
				}
				leaderboard.recordFn = func(_ context.Context, _ *model.LeaderboardActivity) (bool, error) {
					return false, errors.New("leaderboard unavailable")
				}

				result, err := create(analyst, "Looking into it")

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Comment).NotTo(BeNil())
				Expect(result.StatusChanged).To(BeTrue())
				Expect(result.SideEffects).To(ConsistOf(
					MatchFields(IgnoreExtras, Fields{"Op": Equal(service.SideEffectLivePush), "UserID": Equal(creatorID)}),
					MatchFields(IgnoreExtras, Fields{"Op": Equal(service.SideEffectNotification), "UserID": Equal(teammate.ID)}),
					MatchFields(IgnoreExtras, Fields{"Op": Equal(service.SideEffectLeaderboard), "UserID": Equal(analyst.ID)}),
				))

				// the other deliveries still went out
				Expect(notifications.recipients()).To(HaveKey(creatorID))
				Expect(publisher.events()).To(HaveLen(1))
			})

			It("reports a failed team lookup and still notifies the creator", func() {
				users.listByTeamFn = func(_ context.Context, _ int64) ([]model.User, error) {
					return nil, errors.New("timeout")
				}

				result, err := create(analyst, "Looking into it")

				Expect(err).NotTo(HaveOccurred())
				Expect(result.SideEffects).To(HaveLen(1))
				Expect(result.SideEffects[0].Op).To(Equal(service.SideEffectTeamLookup))
				Expect(notifications.recipients()).To(HaveKey(creatorID))
			})
		})

		It("fails without side effects when the comment insert fails", func() {
			comments.createFn = func(_ context.Context, _ *model.Comment) error {
				return errors.New("disk full")
			}

			_, err := create(analyst, "hi")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("disk full"))
			Expect(issues.updateStatusCalls).To(BeZero())
			Expect(notifications.recipients()).To(BeEmpty())
			Expect(leaderboard.recorded).To(BeEmpty())
		})
	})

	Describe("ListByIssue", func() {
		It("returns comments for an existing issue", func() {
			comments.listByIssueFn = func(_ context.Context, id int64) ([]model.CommentWithAuthor, error) {
				return []model.CommentWithAuthor{
					{Comment: model.Comment{ID: 1, IssueID: id}, UserName: "Bea"},
					{Comment: model.Comment{ID: 2, IssueID: id}, UserName: "Dev"},
				}, nil
			}

			list, err := svc.ListByIssue(ctx, issueID)

			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})

		It("returns ErrIssueNotFound for an unknown issue", func() {
			_, err := svc.ListByIssue(ctx, 1)
			Expect(err).To(MatchError(service.ErrIssueNotFound))
		})
	})

	Describe("Update and Delete", func() {
		BeforeEach(func() {
			comments.getByIDFn = func(_ context.Context, id int64) (*model.Comment, error) {
				if id != 900 {
					return nil, store.ErrNotFound
				}
				return &model.Comment{ID: 900, IssueID: issueID, UserID: analyst.ID, Text: "old"}, nil
			}
		})

		It("lets the author edit the text", func() {
			updated, err := svc.Update(ctx, analyst, 900, "new")

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Text).To(Equal("new"))
			Expect(comments.updateCalls).To(Equal(1))
		})

		It("forbids editing someone else's comment", func() {
			_, err := svc.Update(ctx, teammate, 900, "hijack")

			Expect(err).To(MatchError(service.ErrNotCommentAuthor))
			Expect(comments.updateCalls).To(BeZero())
		})

		It("forbids admins from editing comments they did not write", func() {
			_, err := svc.Update(ctx, admin, 900, "moderated")
			Expect(err).To(MatchError(service.ErrNotCommentAuthor))
		})

		It("returns ErrCommentNotFound for a missing comment", func() {
			_, err := svc.Update(ctx, analyst, 1, "x")
			Expect(err).To(MatchError(service.ErrCommentNotFound))

			err = svc.Delete(ctx, analyst, 1)
			Expect(err).To(MatchError(service.ErrCommentNotFound))
		})

		It("lets the author delete and nobody else", func() {
			Expect(svc.Delete(ctx, teammate, 900)).To(MatchError(service.ErrNotCommentAuthor))
			Expect(comments.deleteCalls).To(BeZero())

			Expect(svc.Delete(ctx, analyst, 900)).To(Succeed())
			Expect(comments.deleteCalls).To(Equal(1))
		})
	})
})
