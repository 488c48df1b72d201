package cmd

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tmacher/homefit/internal/access"
	"github.com/tmacher/homefit/internal/domain"
	"github.com/tmacher/homefit/internal/logger"
	"github.com/tmacher/homefit/internal/store"
)

const promptDone = "Done"

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Create or update a buyer profile interactively",
	Run: func(cmd *cobra.Command, args []string) {
		runProfileWizard()
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfileWizard() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	db, err := store.Open(config.Database)
	if err != nil {
		logger.Fatal("opening the database", zap.Error(err), zap.String("path", config.Database))
	}
	defer db.Close()

	name := config.Profile
	if name == "" {
		name = "default"
	}

	profile, err := db.LoadProfile(name)
	if err != nil {
		logger.Fatal("loading the existing profile", zap.Error(err))
	}
	if profile == nil {
		profile = &domain.BuyerProfile{Name: name}
	} else {
		fmt.Printf("Updating existing profile %q.\n", name)
	}

	if err := fillProfile(profile); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	if err := db.SaveProfile(profile); err != nil {
		logger.Fatal("saving the profile", zap.Error(err))
	}

	logger.Info("profile saved",
		zap.String("name", profile.Name),
		zap.String("situation", string(profile.Situation)),
		zap.Int("accessibility_needs", len(profile.AccessibilityNeeds)),
	)
}

func fillProfile(p *domain.BuyerProfile) error {
	situation, err := selectSituation()
	if err != nil {
		return err
	}
	p.Situation = situation

	household, err := selectHousehold()
	if err != nil {
		return err
	}
	p.Household = household

	headcount, err := askInt("How many people will live in the home?", len(household)+1)
	if err != nil {
		return err
	}
	p.Headcount = headcount

	needs, err := selectAccessibilityNeeds()
	if err != nil {
		return err
	}
	p.AccessibilityNeeds = needs

	if len(needs) > 0 {
		notes, err := askString("Anything else about accessibility? (optional)")
		if err != nil {
			return err
		}
		p.AccessibilityNotes = notes
	}

	if err := fillBudget(&p.Budget); err != nil {
		return err
	}
	if err := fillFeatures(p); err != nil {
		return err
	}
	return fillLifestyle(&p.Lifestyle)
}

func selectSituation() (domain.BuyerSituation, error) {
	items := []string{}
	for _, s := range domain.BuyerSituations() {
		items = append(items, string(s))
	}
	prompt := promptui.Select{
		Label: "What best describes your situation?",
		Items: items,
	}
	_, selected, err := prompt.Run()
	return domain.BuyerSituation(selected), err
}

// selectHousehold loops a Select until Done, toggling tags on and off.
func selectHousehold() ([]domain.HouseholdTag, error) {
	chosen := map[domain.HouseholdTag]bool{}
	for {
		items := []string{}
		for _, tag := range domain.HouseholdTags() {
			label := string(tag)
			if chosen[tag] {
				label += " (selected)"
			}
			items = append(items, label)
		}
		prompt := promptui.Select{
			Label: "Who lives with you? Toggle and press ENTER, Done when finished",
			Items: append(items, promptDone),
		}
		_, selected, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		if selected == promptDone {
			break
		}
		tag := domain.HouseholdTag(strings.TrimSuffix(selected, " (selected)"))
		chosen[tag] = !chosen[tag]
	}

	var tags []domain.HouseholdTag
	for _, tag := range domain.HouseholdTags() {
		if chosen[tag] {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func selectAccessibilityNeeds() ([]domain.AccessibilityNeed, error) {
	chosen := map[domain.AccessibilityNeed]bool{}
	for {
		items := []string{}
		for _, need := range access.Needs() {
			label := access.Label(need)
			if chosen[need] {
				label += " (selected)"
			}
			items = append(items, label)
		}
		prompt := promptui.Select{
			Label: "Any accessibility needs? Toggle and press ENTER, Done when finished",
			Items: append(items, promptDone),
			Size:  len(items) + 1,
		}
		index, selected, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		if selected == promptDone {
			break
		}
		need := access.Needs()[index]
		chosen[need] = !chosen[need]
	}

	var needs []domain.AccessibilityNeed
	for _, need := range access.Needs() {
		if chosen[need] {
			needs = append(needs, need)
		}
	}
	return needs, nil
}

func fillBudget(b *domain.Budget) error {
	max, err := askFloat("Comfortable price ceiling (0 to skip)", b.Max)
	if err != nil {
		return err
	}
	b.Max = max

	if max > 0 {
		min, err := askFloat("Price floor (0 for none)", b.Min)
		if err != nil {
			return err
		}
		b.Min = min

		stretch, err := askFloat("Absolute stretch ceiling (0 to reuse the comfortable one)", b.Stretch)
		if err != nil {
			return err
		}
		if stretch < max {
			stretch = max
		}
		b.Stretch = stretch
	}

	monthly, err := askFloat("Max monthly payment (0 to skip)", b.MonthlyPaymentMax)
	if err != nil {
		return err
	}
	b.MonthlyPaymentMax = monthly
	return nil
}

// fillFeatures walks every feature tag once and files it into a bucket.
// AssignFeature keeps the three buckets disjoint.
func fillFeatures(p *domain.BuyerProfile) error {
	buckets := []string{"Skip", string(domain.BucketMustHave), string(domain.BucketNiceToHave), string(domain.BucketDealbreaker)}
	for _, tag := range domain.FeatureTags() {
		prompt := promptui.Select{
			Label: fmt.Sprintf("How important is %q?", tag),
			Items: buckets,
		}
		_, selected, err := prompt.Run()
		if err != nil {
			return err
		}
		if selected == "Skip" {
			continue
		}
		p.AssignFeature(tag, domain.FeatureBucket(selected))
	}
	return nil
}

func fillLifestyle(l *domain.Lifestyle) error {
	beds, err := askFloat("Minimum bedrooms (0 to skip)", l.MinBeds)
	if err != nil {
		return err
	}
	l.MinBeds = beds

	baths, err := askFloat("Minimum bathrooms (0 to skip)", l.MinBaths)
	if err != nil {
		return err
	}
	l.MinBaths = baths

	sqft, err := askInt("Minimum square feet (0 to skip)", int(l.MinSqft))
	if err != nil {
		return err
	}
	l.MinSqft = int64(sqft)

	pets := promptui.Select{
		Label: "Do you have pets?",
		Items: []string{"No", "Yes"},
	}
	_, hasPets, err := pets.Run()
	if err != nil {
		return err
	}
	l.HasPets = hasPets == "Yes"
	return nil
}

func askString(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func askFloat(label string, current float64) (float64, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.FormatFloat(current, 'f', -1, 64),
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return nil
			}
			if _, err := strconv.ParseFloat(input, 64); err != nil {
				return errors.New("enter a number")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

func askInt(label string, current int) (int, error) {
	value, err := askFloat(label, float64(current))
	if err != nil {
		return 0, err
	}
	return int(value), nil
}
