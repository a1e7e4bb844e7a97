package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/configs"
	"threads-backend/dto"
	"threads-backend/model"
)

func newTestUser(username string) model.User {
	return model.User{
		ID:         bson.NewObjectID(),
		Name:       username,
		Username:   username,
		ProfilePic: "http://localhost:5000/uploads/" + username + ".png",
	}
}

func TestCreateEchoesInput(t *testing.T) {
	u1 := newTestUser("u1")
	posts := newMemPostStore()
	svc := NewPostService(posts, newMemUserStore(u1), &fakeImageStore{}, nil)

	post, err := svc.Create(context.Background(), dto.CreatePostDTO{
		PostedBy: u1.ID.Hex(),
		Text:     "hello world",
	}, u1.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Text != "hello world" {
		t.Fatalf("Text=%q, want %q", post.Text, "hello world")
	}
	if post.PostedBy != u1.ID {
		t.Fatalf("PostedBy=%s, want %s", post.PostedBy.Hex(), u1.ID.Hex())
	}
	if post.ID.IsZero() {
		t.Fatal("expected assigned post id")
	}
	if len(post.Replies) != 0 {
		t.Fatalf("Replies=%d, want 0", len(post.Replies))
	}
}

func TestCreateTextAtLimit(t *testing.T) {
	u1 := newTestUser("u1")
	svc := NewPostService(newMemPostStore(), newMemUserStore(u1), &fakeImageStore{}, nil)

	text := strings.Repeat("a", configs.MaxPostTextLen)
	if _, err := svc.Create(context.Background(), dto.CreatePostDTO{PostedBy: u1.ID.Hex(), Text: text}, u1.ID); err != nil {
		t.Fatalf("Create at %d chars: %v", configs.MaxPostTextLen, err)
	}
}

func TestCreateTextTooLong(t *testing.T) {
	u1 := newTestUser("u1")
	svc := NewPostService(newMemPostStore(), newMemUserStore(u1), &fakeImageStore{}, nil)

	text := strings.Repeat("a", configs.MaxPostTextLen+1)
	_, err := svc.Create(context.Background(), dto.CreatePostDTO{PostedBy: u1.ID.Hex(), Text: text}, u1.ID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}

func TestCreateMissingFields(t *testing.T) {
	u1 := newTestUser("u1")
	svc := NewPostService(newMemPostStore(), newMemUserStore(u1), &fakeImageStore{}, nil)

	for _, body := range []dto.CreatePostDTO{
		{Text: "no author"},
		{PostedBy: u1.ID.Hex()},
	} {
		if _, err := svc.Create(context.Background(), body, u1.ID); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Create(%+v) err=%v, want ErrInvalidInput", body, err)
		}
	}
}

func TestCreateUnknownUser(t *testing.T) {
	svc := NewPostService(newMemPostStore(), newMemUserStore(), &fakeImageStore{}, nil)

	ghost := bson.NewObjectID()
	_, err := svc.Create(context.Background(), dto.CreatePostDTO{PostedBy: ghost.Hex(), Text: "hi"}, ghost)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err=%v, want ErrUserNotFound", err)
	}
}

func TestCreateActorMismatch(t *testing.T) {
	u1 := newTestUser("u1")
	u2 := newTestUser("u2")
	svc := NewPostService(newMemPostStore(), newMemUserStore(u1, u2), &fakeImageStore{}, nil)

	_, err := svc.Create(context.Background(), dto.CreatePostDTO{PostedBy: u1.ID.Hex(), Text: "hi"}, u2.ID)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err=%v, want ErrUnauthorized", err)
	}
}

func TestCreateWithImage(t *testing.T) {
	u1 := newTestUser("u1")
	images := &fakeImageStore{}
	svc := NewPostService(newMemPostStore(), newMemUserStore(u1), images, nil)

	post, err := svc.Create(context.Background(), dto.CreatePostDTO{
		PostedBy: u1.ID.Hex(),
		Text:     "with pic",
		Img:      "data:image/png;base64,aGk=",
	}, u1.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if images.uploads != 1 {
		t.Fatalf("uploads=%d, want 1", images.uploads)
	}
	if post.Img == "" || post.ImgID == "" {
		t.Fatalf("expected img url and id, got url=%q id=%q", post.Img, post.ImgID)
	}
}

func TestCreateWithBotMention(t *testing.T) {
	u1 := newTestUser("u1")
	botUser := newTestUser(configs.BotUsername)
	posts := newMemPostStore()
	replier := &fakeReplier{reply: "What's up is that Go compiles fast."}
	svc := NewPostService(posts, newMemUserStore(u1, botUser), &fakeImageStore{}, replier)

	text := "hello @threadbot, what's up?"
	post, err := svc.Create(context.Background(), dto.CreatePostDTO{PostedBy: u1.ID.Hex(), Text: text}, u1.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(post.Replies) != 1 {
		t.Fatalf("Replies=%d, want 1", len(post.Replies))
	}
	r := post.Replies[0]
	if r.Username != configs.BotUsername {
		t.Fatalf("reply username=%q, want %q", r.Username, configs.BotUsername)
	}
	if r.UserID != botUser.ID {
		t.Fatalf("reply userId=%s, want %s", r.UserID.Hex(), botUser.ID.Hex())
	}
	if r.Text == "" || len([]rune(r.Text)) > configs.MaxPostTextLen {
		t.Fatalf("reply text %q out of bounds", r.Text)
	}
	if len(replier.prompts) != 1 || !strings.Contains(replier.prompts[0], text) {
		t.Fatalf("prompt should embed the triggering text, got %q", replier.prompts)
	}

	// The bot reply is persisted, not just returned.
	stored, err := posts.FindByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(stored.Replies) != 1 {
		t.Fatalf("stored Replies=%d, want 1", len(stored.Replies))
	}
}

func TestCreateBotAccountMissingSkips(t *testing.T) {
	u1 := newTestUser("u1")
	svc := NewPostService(newMemPostStore(), newMemUserStore(u1), &fakeImageStore{}, &fakeReplier{reply: "hi"})

	post, err := svc.Create(context.Background(), dto.CreatePostDTO{PostedBy: u1.ID.Hex(), Text: "yo @threadbot"}, u1.ID)
	if err != nil {
		t.Fatalf("Create should not fail when the bot account is missing: %v", err)
	}
	if len(post.Replies) != 0 {
		t.Fatalf("Replies=%d, want 0", len(post.Replies))
	}
}

func TestCreateBotErrorFallsBack(t *testing.T) {
	u1 := newTestUser("u1")
	botUser := newTestUser(configs.BotUsername)
	svc := NewPostService(newMemPostStore(), newMemUserStore(u1, botUser), &fakeImageStore{}, &fakeReplier{err: errBotDown})

	post, err := svc.Create(context.Background(), dto.CreatePostDTO{PostedBy: u1.ID.Hex(), Text: "yo @threadbot"}, u1.ID)
	if err != nil {
		t.Fatalf("Create should not fail on bot error: %v", err)
	}
	if len(post.Replies) != 1 {
		t.Fatalf("Replies=%d, want 1 fallback reply", len(post.Replies))
	}
	if !strings.Contains(post.Replies[0].Text, "couldn't reply") {
		t.Fatalf("reply text=%q, want fallback", post.Replies[0].Text)
	}
}

func TestCreateByBotDoesNotSelfTrigger(t *testing.T) {
	botUser := newTestUser(configs.BotUsername)
	replier := &fakeReplier{reply: "hi"}
	svc := NewPostService(newMemPostStore(), newMemUserStore(botUser), &fakeImageStore{}, replier)

	post, err := svc.Create(context.Background(), dto.CreatePostDTO{
		PostedBy: botUser.ID.Hex(),
		Text:     "mentioning @threadbot in my own post",
	}, botUser.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(post.Replies) != 0 || len(replier.prompts) != 0 {
		t.Fatal("bot-authored text must not trigger the bot")
	}
}

func TestGetNotFound(t *testing.T) {
	svc := NewPostService(newMemPostStore(), newMemUserStore(), &fakeImageStore{}, nil)

	if _, err := svc.Get(context.Background(), bson.NewObjectID()); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err=%v, want ErrPostNotFound", err)
	}
}

func TestDeleteByNonOwner(t *testing.T) {
	u1 := newTestUser("u1")
	u2 := newTestUser("u2")
	posts := newMemPostStore()
	images := &fakeImageStore{}
	svc := NewPostService(posts, newMemUserStore(u1, u2), images, nil)

	post, err := svc.Create(context.Background(), dto.CreatePostDTO{
		PostedBy: u1.ID.Hex(),
		Text:     "mine",
		Img:      "data:image/png;base64,aGk=",
	}, u1.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), post.ID, u2.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err=%v, want ErrUnauthorized", err)
	}
	// Post and image must be untouched.
	if _, err := svc.Get(context.Background(), post.ID); err != nil {
		t.Fatalf("post should survive a rejected delete: %v", err)
	}
	if len(images.destroyed) != 0 {
		t.Fatalf("image destroyed on rejected delete: %v", images.destroyed)
	}
}

func TestDeleteOwnerRemovesImage(t *testing.T) {
	u1 := newTestUser("u1")
	posts := newMemPostStore()
	images := &fakeImageStore{}
	svc := NewPostService(posts, newMemUserStore(u1), images, nil)

	post, err := svc.Create(context.Background(), dto.CreatePostDTO{
		PostedBy: u1.ID.Hex(),
		Text:     "mine",
		Img:      "data:image/png;base64,aGk=",
	}, u1.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), post.ID, u1.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("post still present after delete, err=%v", err)
	}
	if len(images.destroyed) != 1 || images.destroyed[0] != post.ImgID {
		t.Fatalf("destroyed=%v, want [%s]", images.destroyed, post.ImgID)
	}
}

func TestDeleteLegacyImageDerivesID(t *testing.T) {
	u1 := newTestUser("u1")
	posts := newMemPostStore()
	images := &fakeImageStore{}
	svc := NewPostService(posts, newMemUserStore(u1), images, nil)

	// Simulate a record persisted before img_id existed.
	legacy, err := posts.Insert(context.Background(), model.Post{
		PostedBy: u1.ID,
		Text:     "old",
		Img:      "http://res.example.com/uploads/abc123.png",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := svc.Delete(context.Background(), legacy.ID, u1.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(images.destroyed) != 1 || images.destroyed[0] != "abc123" {
		t.Fatalf("destroyed=%v, want [abc123]", images.destroyed)
	}
}
