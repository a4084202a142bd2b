package app

import (
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/game"
)

// resourceRef 配置中对资源ID的一处引用
type resourceRef struct {
	owner string
	id    string
}

// ValidateAssets 检查配置与资源是否一致
//
// 配置无法加载时返回错误；否则返回发现的问题列表（为空表示通过）：
//   - 资源表中的每个文件都存在，图片能读出尺寸
//   - 玩法配置和下落物目录引用的资源ID都已在资源表中登记
func ValidateAssets(fsys fs.FS) ([]string, error) {
	data, err := LoadGameData(fsys)
	if err != nil {
		return nil, err
	}

	rm, err := newResourceManager(fsys, nil)
	if err != nil {
		return nil, err
	}

	var problems []string
	for _, id := range rm.ResourceIDs() {
		res, _ := rm.Lookup(id)
		if _, err := fs.Stat(fsys, res.Path); err != nil {
			problems = append(problems, fmt.Sprintf("%s: file %s not found", id, res.Path))
			continue
		}
		if res.Kind == game.KindImage {
			if _, _, err := rm.ImageSize(res.Path); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", id, err))
			}
		}
	}

	refs := []resourceRef{
		{"player.imageID", data.Gameplay.Player.ImageID},
		{"backgroundImageID", data.Gameplay.BackgroundImageID},
		{"musicID", data.Gameplay.MusicID},
	}
	for _, d := range data.Droppables.Droppables {
		refs = append(refs,
			resourceRef{d.Kind.String() + ".imageID", d.ImageID},
			resourceRef{d.Kind.String() + ".soundID", d.SoundID},
		)
	}
	for _, ref := range refs {
		if ref.id == "" {
			continue
		}
		if _, err := rm.ResolvePath(ref.id); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", ref.owner, err))
		}
	}

	log.Debugf("[Validate] Checked %d resources, %d problems", len(rm.ResourceIDs()), len(problems))
	return problems, nil
}
