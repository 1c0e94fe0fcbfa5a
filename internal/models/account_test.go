package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// Serialized accounts must never expose the password hash or any token
// material, for every role and account state.
func TestAccountJSONNeverLeaksSecrets(t *testing.T) {
	roles := []string{RoleBrand, RoleAgency, RoleInfluencer, RoleIndividual}

	for _, role := range roles {
		t.Run(role, func(t *testing.T) {
			bio := "hello"
			a := Account{
				ID:           uuid.New(),
				Name:         "Jane",
				Email:        "jane@example.com",
				PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
				Role:         role,
				Bio:          &bio,
				Niches:       []Niche{},
				SocialMedia:  []SocialAccount{},
			}

			data, err := json.Marshal(a)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			out := string(data)

			if strings.Contains(out, a.PasswordHash) {
				t.Error("serialized account contains the password hash")
			}
			for _, forbidden := range []string{"password", "token", "session"} {
				if strings.Contains(strings.ToLower(out), forbidden) {
					t.Errorf("serialized account mentions %q: %s", forbidden, out)
				}
			}
		})
	}
}

func TestAccountJSONEmptyCollectionsForInfluencer(t *testing.T) {
	a := Account{
		ID:          uuid.New(),
		Role:        RoleInfluencer,
		Niches:      []Niche{},
		SocialMedia: []SocialAccount{},
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"niches":[]`) {
		t.Errorf("influencer niches should serialize as an empty list: %s", out)
	}
	if !strings.Contains(out, `"social_media":[]`) {
		t.Errorf("influencer social media should serialize as an empty list: %s", out)
	}
}

func TestTotalFollowers(t *testing.T) {
	a := Account{
		SocialMedia: []SocialAccount{
			{Platform: PlatformInstagram, Followers: 1000},
			{Platform: PlatformTikTok, Followers: 2500},
		},
	}
	if got := a.TotalFollowers(); got != 3500 {
		t.Errorf("TotalFollowers = %d, want 3500", got)
	}

	empty := Account{}
	if got := empty.TotalFollowers(); got != 0 {
		t.Errorf("TotalFollowers on empty account = %d, want 0", got)
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleBrand, RoleAgency, RoleInfluencer, RoleIndividual} {
		if !IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "admin", "Brand", "influencers"} {
		if IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = true, want false", role)
		}
	}
}

func TestIsValidPlatform(t *testing.T) {
	valid := []string{
		PlatformInstagram, PlatformTikTok, PlatformFacebook,
		PlatformTwitter, PlatformYouTube, PlatformWhatsApp,
	}
	for _, p := range valid {
		if !IsValidPlatform(p) {
			t.Errorf("IsValidPlatform(%q) = false, want true", p)
		}
	}
	for _, p := range []string{"", "Instagram", "telegram", "x"} {
		if IsValidPlatform(p) {
			t.Errorf("IsValidPlatform(%q) = true, want false", p)
		}
	}
}
