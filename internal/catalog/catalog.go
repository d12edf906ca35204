// Package catalog holds the built-in exercise progressions and seeds them
// into the store. Each category is a ladder ordered by difficulty level;
// equipment variants slot in at the level of comparable difficulty.
package catalog

import (
	"context"
	"fmt"

	"github.com/alexanderramin/snacks/internal/db"
	"github.com/alexanderramin/snacks/internal/domain"
)

func ex(c domain.Category, name string, level int, desc string, equipment ...domain.Equipment) domain.Exercise {
	return domain.Exercise{
		Category:    c,
		Name:        name,
		Level:       level,
		Equipment:   domain.NewEquipmentSet(equipment...),
		Description: desc,
	}
}

var builtin = []domain.Exercise{
	// Pushups
	ex(domain.CategoryPushups, "Wall Push-ups", 1, "Push against wall"),
	ex(domain.CategoryPushups, "Incline Push-ups", 2, "Hands on elevated surface"),
	ex(domain.CategoryPushups, "Knee Push-ups", 3, "Push-ups on knees"),
	ex(domain.CategoryPushups, "Regular Push-ups", 4, "Standard push-ups"),
	ex(domain.CategoryPushups, "Wide Push-ups", 5, "Hands wider than shoulders"),
	ex(domain.CategoryPushups, "Diamond Push-ups", 6, "Hands in diamond shape"),
	ex(domain.CategoryPushups, "Decline Push-ups", 7, "Feet elevated"),
	ex(domain.CategoryPushups, "Pike Push-ups", 8, "Inverted V position"),
	ex(domain.CategoryPushups, "Archer Push-ups", 9, "One-sided push-ups"),
	ex(domain.CategoryPushups, "Single Arm Push-ups", 10, "One arm push-ups"),
	ex(domain.CategoryPushups, "Handstand Push-ups", 11, "Against wall handstand push-ups"),
	ex(domain.CategoryPushups, "Freestanding Handstand Push-ups", 12, "Freestanding handstand push-ups"),
	ex(domain.CategoryPushups, "Planche Push-ups", 13, "Advanced planche position"),
	ex(domain.CategoryPushups, "Weighted Push-ups", 8, "Push-ups with weight vest/backpack", domain.EquipmentDumbbells),
	ex(domain.CategoryPushups, "Dumbbell Press", 6, "Lying dumbbell chest press", domain.EquipmentDumbbells),
	ex(domain.CategoryPushups, "Dumbbell Flyes", 7, "Lying dumbbell flyes", domain.EquipmentDumbbells),
	ex(domain.CategoryPushups, "Barbell Bench Press", 5, "Barbell bench press", domain.EquipmentBarbell),
	ex(domain.CategoryPushups, "Incline Barbell Press", 8, "Incline barbell press", domain.EquipmentBarbell),

	// Squats
	ex(domain.CategorySquats, "Chair Squats", 1, "Assisted squats with chair"),
	ex(domain.CategorySquats, "Box Squats", 2, "Squats to seated position"),
	ex(domain.CategorySquats, "Air Squats", 3, "Bodyweight squats"),
	ex(domain.CategorySquats, "Sumo Squats", 4, "Wide stance squats"),
	ex(domain.CategorySquats, "Jump Squats", 5, "Explosive squat jumps"),
	ex(domain.CategorySquats, "Bulgarian Split Squats", 6, "Rear foot elevated"),
	ex(domain.CategorySquats, "Cossack Squats", 7, "Side-to-side squats"),
	ex(domain.CategorySquats, "Single Leg Squats", 8, "Pistol squats progression"),
	ex(domain.CategorySquats, "Pistol Squats", 9, "Full pistol squats"),
	ex(domain.CategorySquats, "Jump Pistol Squats", 10, "Explosive pistol squats"),
	ex(domain.CategorySquats, "Shrimp Squats", 11, "Advanced single leg squat"),
	ex(domain.CategorySquats, "Dragon Squats", 12, "Advanced shrimp squat variation"),
	ex(domain.CategorySquats, "Goblet Squats", 4, "Squats holding weight", domain.EquipmentDumbbells),
	ex(domain.CategorySquats, "Dumbbell Squats", 5, "Squats with dumbbells", domain.EquipmentDumbbells),
	ex(domain.CategorySquats, "Dumbbell Lunges", 6, "Walking lunges with dumbbells", domain.EquipmentDumbbells),
	ex(domain.CategorySquats, "Barbell Back Squats", 7, "Barbell on back squats", domain.EquipmentBarbell),
	ex(domain.CategorySquats, "Barbell Front Squats", 8, "Barbell front-loaded squats", domain.EquipmentBarbell),
	ex(domain.CategorySquats, "Barbell Lunges", 7, "Lunges with barbell", domain.EquipmentBarbell),

	// Pullups
	ex(domain.CategoryPullups, "Dead Hangs", 1, "Hanging from bar", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Scapular Pulls", 2, "Shoulder blade engagement", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Negative Pull-ups", 3, "Slow descent from top", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Assisted Pull-ups", 4, "Band or partner assisted", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Regular Pull-ups", 5, "Standard pull-ups", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Wide Grip Pull-ups", 6, "Wide grip variation", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Chin-ups", 7, "Underhand grip", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "L-sit Pull-ups", 8, "Pull-ups with L-sit", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Commando Pull-ups", 9, "Side-to-side pull-ups", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Archer Pull-ups", 10, "One-sided pull-ups", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Weighted Pull-ups", 11, "Add weight", domain.EquipmentPullupBar, domain.EquipmentDumbbells),
	ex(domain.CategoryPullups, "One Arm Pull-ups", 12, "Single arm pull-ups", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Muscle-ups", 13, "Pull-up to dip transition", domain.EquipmentPullupBar),
	ex(domain.CategoryPullups, "Dumbbell Rows", 5, "Bent over dumbbell rows", domain.EquipmentDumbbells),
	ex(domain.CategoryPullups, "Single Arm Dumbbell Rows", 6, "One arm dumbbell rows", domain.EquipmentDumbbells),
	ex(domain.CategoryPullups, "Barbell Rows", 7, "Bent over barbell rows", domain.EquipmentBarbell),
	ex(domain.CategoryPullups, "Barbell Deadlifts", 8, "Conventional deadlifts", domain.EquipmentBarbell),

	// Core
	ex(domain.CategoryCore, "Dead Bug", 1, "Lying core stability exercise"),
	ex(domain.CategoryCore, "Crunches", 2, "Basic abdominal crunches"),
	ex(domain.CategoryCore, "Plank", 3, "Hold plank position (seconds)"),
	ex(domain.CategoryCore, "Side Plank", 4, "Side plank hold"),
	ex(domain.CategoryCore, "Bicycle Crunches", 5, "Alternating elbow to knee"),
	ex(domain.CategoryCore, "Russian Twists", 6, "Seated twisting motion"),
	ex(domain.CategoryCore, "Mountain Climbers", 7, "Running in plank position"),
	ex(domain.CategoryCore, "Hollow Body Hold", 8, "Hollow position hold"),
	ex(domain.CategoryCore, "V-ups", 9, "Full body sit-ups"),
	ex(domain.CategoryCore, "L-sits", 10, "Legs at 90 degrees"),
	ex(domain.CategoryCore, "Hanging Knee Raises", 8, "Hanging leg raises", domain.EquipmentPullupBar),
	ex(domain.CategoryCore, "Hanging L-sits", 10, "L-sits from pull-up bar", domain.EquipmentPullupBar),
	ex(domain.CategoryCore, "Dragon Flags", 11, "Advanced core exercise"),
	ex(domain.CategoryCore, "Human Flag", 12, "Side plank on pole", domain.EquipmentPullupBar),
	ex(domain.CategoryCore, "Weighted Russian Twists", 7, "Russian twists with weight", domain.EquipmentDumbbells),
	ex(domain.CategoryCore, "Weighted Plank", 6, "Plank with weight on back", domain.EquipmentDumbbells),

	// Dips
	ex(domain.CategoryDips, "Assisted Dips", 1, "Band or partner assisted"),
	ex(domain.CategoryDips, "Bench Dips", 2, "Feet on ground"),
	ex(domain.CategoryDips, "Elevated Bench Dips", 3, "Feet elevated"),
	ex(domain.CategoryDips, "Chair Dips", 4, "Using two chairs"),
	ex(domain.CategoryDips, "Parallel Bar Dips", 5, "Standard dips", domain.EquipmentPullupBar),
	ex(domain.CategoryDips, "Ring Dips", 6, "On gymnastic rings", domain.EquipmentPullupBar),
	ex(domain.CategoryDips, "Weighted Dips", 7, "Add weight", domain.EquipmentPullupBar, domain.EquipmentDumbbells),
	ex(domain.CategoryDips, "Archer Dips", 8, "One-sided dips", domain.EquipmentPullupBar),
	ex(domain.CategoryDips, "Single Bar Dips", 9, "On single bar", domain.EquipmentPullupBar),
	ex(domain.CategoryDips, "Impossible Dips", 10, "Advanced ring dips", domain.EquipmentPullupBar),

	// Cardio
	ex(domain.CategoryCardio, "Marching in Place", 1, "Low impact marching"),
	ex(domain.CategoryCardio, "Jumping Jacks", 2, "Basic jumping jacks"),
	ex(domain.CategoryCardio, "High Knees", 3, "Running in place"),
	ex(domain.CategoryCardio, "Butt Kickers", 4, "Heel to glute kicks"),
	ex(domain.CategoryCardio, "Burpees", 5, "Full body exercise"),
	ex(domain.CategoryCardio, "Mountain Climbers", 6, "Fast mountain climbers"),
	ex(domain.CategoryCardio, "Star Jumps", 7, "Explosive star position"),
	ex(domain.CategoryCardio, "Tuck Jumps", 8, "Knees to chest jumps"),
	ex(domain.CategoryCardio, "Squat Jumps", 9, "Continuous squat jumps"),
	ex(domain.CategoryCardio, "Burpee Box Jumps", 10, "Burpee with box jump"),
	ex(domain.CategoryCardio, "Devil Press", 11, "Burpee with dumbbells", domain.EquipmentDumbbells),
	ex(domain.CategoryCardio, "Dumbbell Swings", 6, "Kettlebell swing motion with dumbbell", domain.EquipmentDumbbells),
	ex(domain.CategoryCardio, "Dumbbell Thrusters", 8, "Squat to overhead press", domain.EquipmentDumbbells),
	ex(domain.CategoryCardio, "Treadmill Walk", 2, "Brisk walking", domain.EquipmentTreadmill),
	ex(domain.CategoryCardio, "Treadmill Jog", 4, "Light jogging", domain.EquipmentTreadmill),
	ex(domain.CategoryCardio, "Treadmill Run", 6, "Moderate running", domain.EquipmentTreadmill),
	ex(domain.CategoryCardio, "Treadmill Sprint Intervals", 8, "High intensity intervals", domain.EquipmentTreadmill),
	ex(domain.CategoryCardio, "Treadmill Hill Walk", 5, "Incline walking", domain.EquipmentTreadmill),
	ex(domain.CategoryCardio, "Treadmill Hill Run", 9, "Incline running", domain.EquipmentTreadmill),

	// Yoga
	ex(domain.CategoryYoga, "Child's Pose", 1, "Restorative kneeling pose"),
	ex(domain.CategoryYoga, "Cat-Cow Stretch", 2, "Spinal mobility exercise"),
	ex(domain.CategoryYoga, "Downward Dog", 3, "Inverted V stretch"),
	ex(domain.CategoryYoga, "Sun Salutation A", 4, "Basic sun salutation sequence"),
	ex(domain.CategoryYoga, "Warrior I", 5, "Standing lunge pose"),
	ex(domain.CategoryYoga, "Warrior II", 6, "Standing wide-legged pose"),
	ex(domain.CategoryYoga, "Triangle Pose", 7, "Standing side stretch"),
	ex(domain.CategoryYoga, "Tree Pose", 8, "Standing balance pose"),
	ex(domain.CategoryYoga, "Crow Pose", 9, "Arm balance pose"),
	ex(domain.CategoryYoga, "Headstand", 10, "Inverted balance pose"),
	ex(domain.CategoryYoga, "Handstand", 11, "Advanced inverted pose"),
	ex(domain.CategoryYoga, "Scorpion Pose", 12, "Advanced backbend inversion"),

	// Stretches
	ex(domain.CategoryStretches, "Neck Rolls", 1, "Gentle neck mobility"),
	ex(domain.CategoryStretches, "Shoulder Rolls", 2, "Shoulder mobility"),
	ex(domain.CategoryStretches, "Arm Circles", 3, "Dynamic arm stretches"),
	ex(domain.CategoryStretches, "Hip Circles", 4, "Hip mobility exercise"),
	ex(domain.CategoryStretches, "Leg Swings", 5, "Dynamic leg stretches"),
	ex(domain.CategoryStretches, "Hamstring Stretch", 6, "Seated or standing hamstring stretch"),
	ex(domain.CategoryStretches, "Quad Stretch", 7, "Standing quadriceps stretch"),
	ex(domain.CategoryStretches, "Calf Stretch", 8, "Wall or standing calf stretch"),
	ex(domain.CategoryStretches, "Hip Flexor Stretch", 9, "Lunge position hip flexor stretch"),
	ex(domain.CategoryStretches, "Pigeon Pose", 10, "Deep hip opener"),
	ex(domain.CategoryStretches, "Butterfly Stretch", 11, "Seated groin stretch"),
	ex(domain.CategoryStretches, "Spinal Twist", 12, "Seated or lying spinal rotation"),
}

// All returns a copy of the built-in catalog.
func All() []domain.Exercise {
	out := make([]domain.Exercise, len(builtin))
	copy(out, builtin)
	return out
}

// Seed inserts the built-in catalog into the exercises table. Existing rows
// keep their values (INSERT OR IGNORE), so re-running on every startup is
// safe and user databases pick up new exercises on upgrade.
func Seed(ctx context.Context, conn db.DBTX) error {
	query := `INSERT OR IGNORE INTO exercises (category, name, difficulty_level, equipment_required, description)
		VALUES (?, ?, ?, ?, ?)`
	for _, e := range builtin {
		if _, err := conn.ExecContext(ctx, query,
			string(e.Category),
			e.Name,
			e.Level,
			e.Equipment.String(),
			e.Description,
		); err != nil {
			return fmt.Errorf("seeding exercise %q: %w", e.Name, err)
		}
	}
	return nil
}
