package fitday

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitday/internal/model"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your biometric profile",
}

var (
	profileName   string
	profileAge    int
	profileHeight int
	profileWeight float64
	profileGender string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save or replace the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := model.Profile{
			Name:   profileName,
			Age:    profileAge,
			Height: profileHeight,
			Weight: profileWeight,
			Gender: model.Gender(profileGender),
		}
		return withStore(func(s *session) error {
			saved, err := s.store.SaveProfile(p)
			if err != nil {
				return err
			}
			out(cmd, "Saved profile for %s\n", saved.Name)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile with BMI, BMR and daily calorie need",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			p, ok := s.store.GetProfile()
			if !ok {
				return fmt.Errorf("no profile saved; run `fitday profile set` first")
			}
			level := s.store.GetSettings().ActivityLevel
			if level == "" {
				level = model.ActivitySedentary
			}
			bmi := s.engine.BodyMassIndex(p.Weight, float64(p.Height))
			class := s.engine.BMICategory(bmi)
			bmr := s.engine.BasalMetabolicRate(p.Weight, float64(p.Height), p.Age, p.Gender)
			out(cmd, "Name: %s\n", p.Name)
			out(cmd, "Age: %d | Height: %d cm | Weight: %.1f kg | Gender: %s\n", p.Age, p.Height, p.Weight, p.Gender)
			out(cmd, "BMI: %.1f (%s) %s\n", bmi, class.Label, class.Advice)
			out(cmd, "BMR: %d kcal\n", bmr)
			out(cmd, "Daily need (%s): %d kcal\n", level, s.engine.DailyCalorieNeed(bmr, level))
			if !p.SavedAt.IsZero() {
				out(cmd, "Saved: %s\n", p.SavedAt.Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			if err := s.store.DeleteProfile(); err != nil {
				return err
			}
			out(cmd, "Deleted profile\n")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd, profileDeleteCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Name (at least 2 characters)")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years (10-120)")
	profileSetCmd.Flags().IntVar(&profileHeight, "height", 0, "Height in cm (100-250)")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg (30-300)")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male or female")
	_ = profileSetCmd.MarkFlagRequired("name")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("gender")
}
